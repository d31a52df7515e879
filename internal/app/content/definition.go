// internal/app/content/definition.go
package content

import (
	"context"
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

// resourceDef binds a typed backend resource to the form-level Definition
// surface. T is the wire record, I the outbound create/update payload.
type resourceDef[T any, I any] struct {
	slug       string
	label      string
	plural     string
	fieldList  []Field
	categories []string
	defaults   Values

	res *api.Resource[T, I]

	decode func(T) Values // record -> edit-form values
	encode func(Values) I // form values -> outbound payload
	row    func(T) Row
}

func (d *resourceDef[T, I]) Slug() string         { return d.slug }
func (d *resourceDef[T, I]) Label() string        { return d.label }
func (d *resourceDef[T, I]) Plural() string       { return d.plural }
func (d *resourceDef[T, I]) Fields() []Field      { return d.fieldList }
func (d *resourceDef[T, I]) Categories() []string { return d.categories }

func (d *resourceDef[T, I]) Defaults() Values {
	if d.defaults == nil {
		return Values{}
	}
	return d.defaults.Clone()
}

func (d *resourceDef[T, I]) List(ctx context.Context) ([]Row, error) {
	records, err := d.res.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, d.row(rec))
	}
	return rows, nil
}

func (d *resourceDef[T, I]) Get(ctx context.Context, id models.ID) (Values, error) {
	rec, err := d.res.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.decode(rec), nil
}

// validate runs the fixed-order required-field check. It never touches the
// network; the first blank required field stops the submission.
func (d *resourceDef[T, I]) validate(vals Values) error {
	for _, f := range d.fieldList {
		if f.Required && strings.TrimSpace(vals[f.Name]) == "" {
			return &ValidationError{Message: requiredMessage(d.label, f)}
		}
	}
	return nil
}

// normalize cleans submitted values before encoding. Image fields accept a
// pasted URL as well as an uploaded one; relative paths are resolved against
// the backend that serves them, matching what the upload endpoint returns.
func (d *resourceDef[T, I]) normalize(vals Values) Values {
	out := vals.Clone()
	for _, f := range d.fieldList {
		if f.Kind == KindImage {
			out[f.Name] = d.res.ResolveURL(out[f.Name])
		}
	}
	return out
}

func (d *resourceDef[T, I]) Create(ctx context.Context, vals Values) error {
	if err := d.validate(vals); err != nil {
		return err
	}
	_, err := d.res.Create(ctx, d.encode(d.normalize(vals)))
	return err
}

// Update is a full-record replace; the form carries every field.
func (d *resourceDef[T, I]) Update(ctx context.Context, id models.ID, vals Values) error {
	if err := d.validate(vals); err != nil {
		return err
	}
	_, err := d.res.Update(ctx, id, d.encode(d.normalize(vals)))
	return err
}

func (d *resourceDef[T, I]) Delete(ctx context.Context, id models.ID) error {
	return d.res.Delete(ctx, id)
}
