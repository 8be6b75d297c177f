package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/service"
)

func (s *Server) registerLeadRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listLeads",
		Method:      http.MethodGet,
		Path:        "/api/leads",
		Summary:     "List or export leads",
		Description: "Returns leads as JSON, or as a CSV attachment when format=csv",
		Tags:        []string{"Leads"},
	}, s.handleListLeads)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createLead",
		Method:        http.MethodPost,
		Path:          "/api/leads",
		Summary:       "Capture lead",
		Tags:          []string{"Leads"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateLead)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteLead",
		Method:      http.MethodDelete,
		Path:        "/api/leads",
		Summary:     "Delete lead",
		Tags:        []string{"Leads"},
	}, s.handleDeleteLead)
}

// === DTOs ===

// ListLeadsInput contains parameters for listing leads.
type ListLeadsInput struct {
	ProductID string `query:"productId" doc:"Only return leads of this product"`
	Format    string `query:"format" doc:"csv returns a CSV download, anything else JSON"`
}

// LeadListOutput is either a JSON lead list or a CSV download.
type LeadListOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               any
}

// LeadOutput wraps a single lead for Huma.
type LeadOutput struct {
	Body domain.Lead
}

// CreateLeadInput wraps the create lead request for Huma.
type CreateLeadInput struct {
	Body service.CreateLeadRequest
}

// === Handlers ===

func (s *Server) handleListLeads(ctx context.Context, input *ListLeadsInput) (*LeadListOutput, error) {
	if input.Format == "csv" {
		csv, err := s.services.Lead.ExportCSV(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		return &LeadListOutput{
			ContentType:        "text/csv",
			ContentDisposition: "attachment; filename=leads.csv",
			Body:               []byte(csv),
		}, nil
	}

	leads, err := s.services.Lead.ListLeads(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	return &LeadListOutput{ContentType: "application/json", Body: leads}, nil
}

func (s *Server) handleCreateLead(ctx context.Context, input *CreateLeadInput) (*LeadOutput, error) {
	lead, err := s.services.Lead.CreateLead(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &LeadOutput{Body: *lead}, nil
}

func (s *Server) handleDeleteLead(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if err := s.services.Lead.DeleteLead(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{Body: DeleteResponse{Success: true}}, nil
}
