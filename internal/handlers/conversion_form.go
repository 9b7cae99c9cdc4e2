package handlers

//go:generate mockgen -source=conversion_form.go -destination=conversion_form_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// ConversionFormer defines the conversion form lifecycle the handlers drive.
type ConversionFormer interface {
	Mount(ctx context.Context) *models.ConversionForm
	UpdateField(form *models.ConversionForm, name, value string) error
	Submit(ctx context.Context, form *models.ConversionForm) error
}

// SessionStore keeps conversion forms between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.ConversionForm, error)
	Save(ctx context.Context, form *models.ConversionForm) error
	Delete(ctx context.Context, id string) error
}

// NewMountHandler returns an HTTP handler that mounts a fresh conversion form.
// Any form previously bound to the caller's session is discarded.
func NewMountHandler(svc ConversionFormer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if oldID, ok := sessionIDFromRequest(r); ok {
			if err := store.Delete(ctx, oldID); err != nil {
				logger.Log.Warnw("failed to drop previous session",
					"request_id", middlewares.RequestIDFromContext(ctx),
					"form_id", oldID,
					"error", err,
				)
			}
		}

		form := svc.Mount(ctx)

		if err := store.Save(ctx, form); err != nil {
			logger.Log.Errorw("failed to save session",
				"request_id", middlewares.RequestIDFromContext(ctx),
				"form_id", form.ID,
				"error", err,
			)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		setSessionCookie(w, form.ID)
		renderForm(w, http.StatusOK, form)
	}
}

// NewSubmitHandler returns an HTTP handler that applies the posted fields and submits the form.
// A caller without a live session gets a freshly mounted form first.
func NewSubmitHandler(svc ConversionFormer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}

		form, err := loadSession(ctx, r, store)
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			form = svc.Mount(ctx)
			setSessionCookie(w, form.ID)
		case err != nil:
			logger.Log.Errorw("failed to load session",
				"request_id", middlewares.RequestIDFromContext(ctx),
				"error", err,
			)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		for _, name := range models.FormFields {
			if _, posted := r.PostForm[name]; !posted {
				continue
			}
			if err := svc.UpdateField(form, name, r.PostForm.Get(name)); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		status := http.StatusOK
		if err := svc.Submit(ctx, form); err != nil {
			if !errors.Is(err, services.ErrIncompleteForm) && !errors.Is(err, services.ErrUnknownCurrency) {
				logger.Log.Errorw("failed to submit conversion form",
					"request_id", middlewares.RequestIDFromContext(ctx),
					"form_id", form.ID,
					"error", err,
				)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			status = http.StatusBadRequest
		}

		if err := store.Save(ctx, form); err != nil {
			logger.Log.Errorw("failed to save session",
				"request_id", middlewares.RequestIDFromContext(ctx),
				"form_id", form.ID,
				"error", err,
			)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		renderForm(w, status, form)
	}
}

// NewUpdateFieldHandler returns an HTTP handler that changes one field of the caller's form.
// Expects form values "name" and "value".
func NewUpdateFieldHandler(svc ConversionFormer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}

		form, err := loadSession(ctx, r, store)
		if err != nil {
			if errors.Is(err, repositories.ErrSessionNotFound) {
				http.Error(w, "session not found", http.StatusNotFound)
				return
			}
			logger.Log.Errorw("failed to load session",
				"request_id", middlewares.RequestIDFromContext(ctx),
				"error", err,
			)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if err := svc.UpdateField(form, r.PostForm.Get("name"), r.PostForm.Get("value")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := store.Save(ctx, form); err != nil {
			logger.Log.Errorw("failed to save session",
				"request_id", middlewares.RequestIDFromContext(ctx),
				"form_id", form.ID,
				"error", err,
			)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func loadSession(ctx context.Context, r *http.Request, store SessionStore) (*models.ConversionForm, error) {
	id, ok := sessionIDFromRequest(r)
	if !ok {
		return nil, repositories.ErrSessionNotFound
	}
	return store.Get(ctx, id)
}
