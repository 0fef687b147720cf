package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type ServiceRequestResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	GarageID   string    `json:"garage_id"`
	VehicleID  string    `json:"vehicle_id"`
	MechanicID string    `json:"mechanic_id,omitempty"`
	Status     string    `json:"status"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	FinalTotal float64   `json:"final_total,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		GarageID:   r.GarageID,
		VehicleID:  r.VehicleID,
		MechanicID: r.MechanicID,
		Status:     string(r.Status),
		Latitude:   r.Coordinates.Latitude,
		Longitude:  r.Coordinates.Longitude,
		FinalTotal: r.FinalTotal,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type OngoingItemResponse struct {
	ID               string    `json:"id"`
	CheckpointID     string    `json:"checkpoint_id"`
	CatalogServiceID string    `json:"catalog_service_id"`
	Name             string    `json:"name"`
	PriceSnapshot    float64   `json:"price_snapshot"`
	ExpectedDate     time.Time `json:"expected_date"`
	Finished         bool      `json:"finished"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromOngoingItem(it entities.OngoingItem) OngoingItemResponse {
	return OngoingItemResponse{
		ID:               it.ID,
		CheckpointID:     it.CheckpointID,
		CatalogServiceID: it.CatalogServiceID,
		Name:             it.Name,
		PriceSnapshot:    it.PriceSnapshot,
		ExpectedDate:     it.ExpectedDate,
		Finished:         it.Finished,
		CreatedAt:        it.CreatedAt,
	}
}

type AdditionalItemResponse struct {
	ID               string    `json:"id"`
	CheckpointID     string    `json:"checkpoint_id"`
	CatalogServiceID string    `json:"catalog_service_id"`
	Name             string    `json:"name"`
	PriceSnapshot    float64   `json:"price_snapshot"`
	Approved         bool      `json:"approved"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromAdditionalItem(it entities.AdditionalItem) AdditionalItemResponse {
	return AdditionalItemResponse{
		ID:               it.ID,
		CheckpointID:     it.CheckpointID,
		CatalogServiceID: it.CatalogServiceID,
		Name:             it.Name,
		PriceSnapshot:    it.PriceSnapshot,
		Approved:         it.Approved,
		CreatedAt:        it.CreatedAt,
	}
}

type CheckpointResponse struct {
	ID               string    `json:"id"`
	ServiceRequestID string    `json:"service_request_id"`
	MechanicID       string    `json:"mechanic_id"`
	Description      string    `json:"description"`
	Approved         bool      `json:"approved"`
	Final            bool      `json:"final,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromCheckpoint(c entities.Checkpoint) CheckpointResponse {
	return CheckpointResponse{
		ID:               c.ID,
		ServiceRequestID: c.ServiceRequestID,
		MechanicID:       c.MechanicID,
		Description:      c.Description,
		Approved:         c.Approved,
		Final:            c.Final,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

type CheckpointWithItemsResponse struct {
	Checkpoint      CheckpointResponse       `json:"checkpoint"`
	OngoingItems    []OngoingItemResponse    `json:"ongoing_items"`
	AdditionalItems []AdditionalItemResponse `json:"additional_items"`
}

func FromCheckpointWithItems(cw usecase.CheckpointWithItems) CheckpointWithItemsResponse {
	out := CheckpointWithItemsResponse{
		Checkpoint:      FromCheckpoint(cw.Checkpoint),
		OngoingItems:    make([]OngoingItemResponse, 0, len(cw.OngoingItems)),
		AdditionalItems: make([]AdditionalItemResponse, 0, len(cw.AdditionalItems)),
	}
	for _, it := range cw.OngoingItems {
		out.OngoingItems = append(out.OngoingItems, FromOngoingItem(it))
	}
	for _, it := range cw.AdditionalItems {
		out.AdditionalItems = append(out.AdditionalItems, FromAdditionalItem(it))
	}
	return out
}

type InvoiceLineResponse struct {
	ItemID           string  `json:"item_id"`
	CheckpointID     string  `json:"checkpoint_id"`
	CatalogServiceID string  `json:"catalog_service_id"`
	Name             string  `json:"name"`
	Kind             string  `json:"kind"`
	Price            float64 `json:"price"`
}

type InvoiceSummaryResponse struct {
	RequestID string                `json:"request_id"`
	Lines     []InvoiceLineResponse `json:"lines"`
	Subtotal  float64               `json:"subtotal"`
}

func FromInvoiceSummary(s usecase.InvoiceSummary) InvoiceSummaryResponse {
	out := InvoiceSummaryResponse{
		RequestID: s.RequestID,
		Lines:     make([]InvoiceLineResponse, 0, len(s.Lines)),
		Subtotal:  s.Subtotal,
	}
	for _, l := range s.Lines {
		out.Lines = append(out.Lines, InvoiceLineResponse{
			ItemID:           l.ItemID,
			CheckpointID:     l.CheckpointID,
			CatalogServiceID: l.CatalogServiceID,
			Name:             l.Name,
			Kind:             l.Kind,
			Price:            l.Price,
		})
	}
	return out
}

type CompletionResponse struct {
	Request           ServiceRequestResponse `json:"request"`
	Summary           InvoiceSummaryResponse `json:"summary"`
	AdditionalCharges float64                `json:"additional_charges"`
	Discount          float64                `json:"discount"`
	FinalTotal        float64                `json:"final_total"`
}

func FromCompletionResult(r usecase.CompletionResult) CompletionResponse {
	return CompletionResponse{
		Request:           FromServiceRequest(r.Request),
		Summary:           FromInvoiceSummary(r.Summary),
		AdditionalCharges: r.AdditionalCharges,
		Discount:          r.Discount,
		FinalTotal:        r.FinalTotal,
	}
}
