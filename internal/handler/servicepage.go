package handler

import (
	"net/http"
	"net/url"

	"github.com/bekabe-press/api/internal/enum"
	"github.com/bekabe-press/api/internal/pricing"
	"github.com/go-chi/chi/v5"
)

// ServiceHandler handles the quotation calculator page.
type ServiceHandler struct{}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

// RegisterRoutes registers the quotation page to the router.
func (h *ServiceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/service", h.ServicePage)
	r.Post("/service", h.ServicePage)
}

type servicePageData struct {
	ServiceType string
	Quote       pricing.Quote
}

// ServicePage renders the quotation form and, on POST, the calculated
// prices. Each service type reads its own set of form fields.
func (h *ServiceHandler) ServicePage(w http.ResponseWriter, r *http.Request) {
	data := servicePageData{ServiceType: enum.ServiceSticker}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil {
			req := quoteRequest(r.PostForm)
			if req.ServiceType != "" {
				data.ServiceType = req.ServiceType
			}
			data.Quote = pricing.Calculate(req)
		}
	}

	render(w, "service.html", data)
}

// quoteRequest maps the per-service form fields onto a pricing request.
// A field the form did not send at all defaults to "0"; a field sent
// empty stays empty so it fails to parse, matching the legacy page.
func quoteRequest(form url.Values) pricing.Request {
	req := pricing.Request{ServiceType: form.Get("service_type")}

	switch req.ServiceType {
	case enum.ServiceDTF:
		req.Qty = formValueOrZero(form, "dtf_qty")
		req.DTFSize = form.Get("dtf_size")
	case enum.ServiceBanner:
		req.Qty = formValueOrZero(form, "banner_qty")
		req.Height = formValueOrZero(form, "banner_height")
		req.Width = formValueOrZero(form, "banner_width")
		req.Unit = form.Get("banner_size_unit")
	case enum.ServiceTransparent:
		req.Qty = formValueOrZero(form, "transparent_qty")
		req.Height = formValueOrZero(form, "transparent_height")
		req.Width = formValueOrZero(form, "transparent_width")
		req.Unit = form.Get("transparent_size_unit")
	case enum.ServiceOneWayVision:
		req.Qty = formValueOrZero(form, "onewayvision_qty")
		req.Height = formValueOrZero(form, "onewayvision_height")
		req.Width = formValueOrZero(form, "onewayvision_width")
		req.Unit = form.Get("onewayvision_size_unit")
	default:
		req.Qty = formValueOrZero(form, "qty")
		req.Height = formValueOrZero(form, "height")
		req.Width = formValueOrZero(form, "width")
		req.Unit = form.Get("size_unit")
	}

	return req
}

func formValueOrZero(form url.Values, key string) string {
	if _, ok := form[key]; !ok {
		return "0"
	}
	return form.Get(key)
}
