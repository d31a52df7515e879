// internal/app/features/site/blogs.go
package site

import (
	"context"
	"net/http"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/filter"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/htmlsanitize"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeBlogList renders the blog index with an optional category facet.
// Route: GET /blogs
func (h *Handler) ServeBlogList(w http.ResponseWriter, r *http.Request) {
	category := query.Get(r, "category")
	if category == "" {
		category = filter.All
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := fetch(ctx, h.Log, h.Blogs, "blogs")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "blog list fetch failed", err, "Unable to load the blog.", "/")
		return
	}
	blogs := make([]models.Blog, 0, len(all))
	for _, b := range all {
		if filter.Match(b.Category, category, "", "") {
			blogs = append(blogs, b)
		}
	}

	data := blogListData{
		BaseVM:     viewdata.NewBaseVM(r, "Blog", "/"),
		Blogs:      blogs,
		Category:   category,
		Categories: filter.Options(models.BlogCategories),
	}
	templates.Render(w, r, "site_blogs", data)
}

// ServeBlog renders one article with its sanitized body.
// Route: GET /blogs/{id}
func (h *Handler) ServeBlog(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	blog, err := h.Blogs.Get(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			h.ErrLog.LogNotFound(w, r, "blog not found", err, "That article does not exist.", "/blogs")
			return
		}
		h.ErrLog.LogServerError(w, r, "blog fetch failed", err, "Unable to load the article.", "/blogs")
		return
	}

	data := blogData{
		BaseVM: viewdata.NewBaseVM(r, blog.Title, "/blogs"),
		Blog:   blog,
		Body:   htmlsanitize.PrepareForDisplay(blog.Content),
	}
	templates.Render(w, r, "site_blog", data)
}
