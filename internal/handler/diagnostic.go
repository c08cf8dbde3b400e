package handler

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zphs-kuchanpally/ai-buddy/internal/database"
	"github.com/zphs-kuchanpally/ai-buddy/internal/model"
)

const (
	maxListedCollections = 10
	maxErrorChars        = 50
)

// DiagnosticHandler serves GET /test.  DB is nil when no data store is
// configured.  Getenv defaults to os.Getenv.
type DiagnosticHandler struct {
	DB           database.Collaborator
	CheckTimeout time.Duration
	Getenv       func(string) string
}

func NewDiagnosticHandler(db database.Collaborator, checkTimeout time.Duration) *DiagnosticHandler {
	return &DiagnosticHandler{DB: db, CheckTimeout: checkTimeout, Getenv: os.Getenv}
}

// Test reports whether the backend and its data store are reachable.  It
// always answers 200; failures become status strings.
func (h *DiagnosticHandler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, h.report(c.Request().Context()))
}

func (h *DiagnosticHandler) report(ctx context.Context) model.Diagnostic {
	d := model.Diagnostic{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	h.checkStore(ctx, &d)

	getenv := h.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	d.DatabaseURL = presence(getenv("DATABASE_URL"))
	d.DatabaseName = presence(getenv("DATABASE_NAME"))
	return d
}

func (h *DiagnosticHandler) checkStore(ctx context.Context, d *model.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			d.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxErrorChars)
			d.Collections = []string{}
		}
	}()

	if h.DB == nil {
		d.Database = "❌ Database module not found (run enable-database first)"
		return
	}
	if !h.DB.IsAvailable() {
		d.Database = "⚠️  Available but not initialized"
		return
	}
	d.Database = "✅ Available"
	d.ConnectionStatus = "Connected"

	timeout := h.CheckTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	names, err := h.listCollections(ctx)
	if err != nil {
		d.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorChars)
		return
	}
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names == nil {
		names = []string{}
	}
	d.Collections = names
	d.Database = "✅ Connected & Working"
}

// listCollections turns a driver panic during listing into an error so it
// is reported like any other listing failure.
func (h *DiagnosticHandler) listCollections(ctx context.Context) (names []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return h.DB.ListCollections(ctx)
}

func presence(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
