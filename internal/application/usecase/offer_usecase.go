package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

// OfferUseCase arma los datos estructurados de la oferta comercial de un
// proyecto (líneas de venta con nombres de ítem resueltos) y delega el
// binario al generador de PDF.
type OfferUseCase struct {
	projects  repository.ProjectRepository
	clients   repository.ClientRepository
	items     repository.ItemRepository
	lineItems repository.LineItemRepository
	generator OfferGenerator
}

// NewOfferUseCase construye el caso de uso.
func NewOfferUseCase(
	projects repository.ProjectRepository,
	clients repository.ClientRepository,
	items repository.ItemRepository,
	lineItems repository.LineItemRepository,
	generator OfferGenerator,
) *OfferUseCase {
	return &OfferUseCase{projects: projects, clients: clients, items: items, lineItems: lineItems, generator: generator}
}

// GenerateProjectOffer genera el PDF de oferta del proyecto y devuelve los
// bytes más el nombre de archivo.
func (uc *OfferUseCase) GenerateProjectOffer(ctx context.Context, actor domain.Actor, projectID int64) (*dto.GeneratedFileResponse, error) {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	client, err := uc.clients.GetByID(ctx, project.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	sales, err := uc.lineItems.SalesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	data := OfferData{
		ProjectName: project.Name,
		ClientName:  client.Name,
		Lines:       make([]OfferLine, 0, len(sales)),
	}
	for _, s := range sales {
		item, err := uc.items.GetByID(ctx, s.ItemID)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("ítem %d", s.ItemID)
		if item != nil {
			name = item.Name
		}
		data.Lines = append(data.Lines, OfferLine{
			ItemName: name,
			Price:    s.Price,
			Currency: s.Currency,
			Quantity: s.Quantity,
		})
	}
	pdfBytes, err := uc.generator.GenerateProjectOffer(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("generar oferta: %w", err)
	}
	filename := fmt.Sprintf("oferta-%d-%s.pdf", project.ID, time.Now().Format("20060102"))
	return &dto.GeneratedFileResponse{Filename: filename, Data: pdfBytes}, nil
}
