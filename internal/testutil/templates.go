// internal/testutil/templates.go
package testutil

import (
	"sync"
	"testing"

	"github.com/AS-Danish/secure-future-hero/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplates boots the template engine once per test binary so handlers
// that render pages can run. Feature template sets register themselves via
// init when the feature package is imported.
func BootTemplates(t *testing.T) {
	t.Helper()
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()
		eng := templates.New(false)
		if bootErr = eng.Boot(zap.NewNop()); bootErr != nil {
			return
		}
		templates.UseEngine(eng, zap.NewNop())
	})
	if bootErr != nil {
		t.Fatalf("template engine boot: %v", bootErr)
	}
}
