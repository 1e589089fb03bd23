package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/lemonstand/pos/internal/order/application"
	"github.com/lemonstand/pos/internal/order/domain"
	pricing "github.com/lemonstand/pos/internal/pricing/domain"
)

// Handler exposes the store's operation surface to the view layer. Every
// mutating route answers with the committed snapshot; soft conditions
// (cap hit, short cash) arrive inside it as a toast, not as an HTTP error.
type Handler struct {
	log    *slog.Logger
	store  *application.Store
	tracer trace.Tracer
}

func NewHandler(log *slog.Logger, store *application.Store) *Handler {
	return &Handler{
		log:    log,
		store:  store,
		tracer: otel.Tracer("pos-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/state", h.getState)
	r.Get("/presets", h.getPresets)

	r.Post("/order/items", h.addItem)
	r.Put("/order/items/{id}", h.editItem)
	r.Delete("/order/items/{id}", h.removeItem)
	r.Post("/order/items/{id}/duplicate", h.duplicateItem)
	r.Post("/order/clear", h.clearOrder)
	r.Post("/order/new", h.startNewOrder)
	r.Post("/order/payment", h.processPayment)

	r.Put("/pricing", h.updatePricing)
	r.Put("/theme", h.setTheme)
	r.Put("/current-spec", h.setCurrentSpec)

	r.Post("/ui/payment/show", h.flag((*application.Store).ShowPayment))
	r.Post("/ui/payment/hide", h.flag((*application.Store).HidePayment))
	r.Post("/ui/receipt/show", h.flag((*application.Store).ShowReceipt))
	r.Post("/ui/receipt/hide", h.flag((*application.Store).HideReceipt))
	r.Post("/ui/settings/show", h.flag((*application.Store).ShowSettings))
	r.Post("/ui/settings/hide", h.flag((*application.Store).HideSettings))
	r.Post("/ui/toast", h.showToast)
	r.Delete("/ui/toast", h.hideToast)

	return r
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.store.Snapshot())
}

func (h *Handler) getPresets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pricing.Presets())
}

type specReq struct {
	Spec pricing.Spec `json:"spec"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "AddItem")
	defer span.End()

	var req specReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	h.writeState(w, h.store.Add(req.Spec))
}

func (h *Handler) editItem(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "EditItem")
	defer span.End()

	var req specReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	h.writeState(w, h.store.Edit(chi.URLParam(r, "id"), req.Spec))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "RemoveItem")
	defer span.End()

	h.writeState(w, h.store.Remove(chi.URLParam(r, "id")))
}

func (h *Handler) duplicateItem(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "DuplicateItem")
	defer span.End()

	h.writeState(w, h.store.Duplicate(chi.URLParam(r, "id")))
}

func (h *Handler) clearOrder(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.store.ClearOrder())
}

func (h *Handler) startNewOrder(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.store.StartNewOrder())
}

type paymentReq struct {
	Method      domain.PaymentMethod `json:"method"`
	AmountCents int64                `json:"amount_cents"`
}

func (h *Handler) processPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ProcessPayment")
	defer span.End()

	var req paymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	switch req.Method {
	case domain.MethodCash, domain.MethodCard, domain.MethodOther:
	default:
		http.Error(w, "unknown payment method", http.StatusBadRequest)
		return
	}
	h.writeState(w, h.store.ProcessPayment(ctx, req.Method, req.AmountCents))
}

func (h *Handler) updatePricing(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdatePricing")
	defer span.End()

	var cfg pricing.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	h.writeState(w, h.store.UpdatePricing(ctx, cfg))
}

type themeReq struct {
	Theme application.Theme `json:"theme"`
}

func (h *Handler) setTheme(w http.ResponseWriter, r *http.Request) {
	var req themeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	h.writeState(w, h.store.SetTheme(req.Theme))
}

func (h *Handler) setCurrentSpec(w http.ResponseWriter, r *http.Request) {
	var req specReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	h.writeState(w, h.store.SetCurrentSpec(req.Spec))
}

type toastReq struct {
	Level   application.ToastLevel `json:"level"`
	Message string                 `json:"message"`
}

func (h *Handler) showToast(w http.ResponseWriter, r *http.Request) {
	var req toastReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	h.writeState(w, h.store.ShowToast(req.Level, req.Message))
}

func (h *Handler) hideToast(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.store.HideToast())
}

func (h *Handler) flag(op func(*application.Store) application.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writeState(w, op(h.store))
	}
}

func (h *Handler) writeState(w http.ResponseWriter, st application.State) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(st); err != nil {
		h.log.Error("state encode failed", "err", err)
	}
}
