package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/validate"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
	"github.com/seifmegahed/daftar-sub000/pkg/logger"
)

var errGettingDocuments = errors.New("error al obtener los documentos")

// DocumentUseCase acciones sobre documentos y sus relaciones polimórficas.
// Los bytes van primero al colaborador de almacenamiento; la fila y su
// relación se insertan después en una transacción.
type DocumentUseCase struct {
	documents repository.DocumentRepository
	storage   Storage
	tx        TxRunner
	log       *logger.Logger
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(documents repository.DocumentRepository, storage Storage, tx TxRunner, log *logger.Logger) *DocumentUseCase {
	return &DocumentUseCase{documents: documents, storage: storage, tx: tx, log: log}
}

// Upload guarda el archivo y registra documento + relación en una
// transacción. Si el almacenamiento falla no se inserta ninguna fila; si
// la transacción falla, el archivo huérfano se elimina best effort.
func (uc *DocumentUseCase) Upload(ctx context.Context, actor domain.Actor, in dto.UploadDocumentRequest, data []byte) (*dto.DocumentResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	owner := domain.DocumentRef{Kind: domain.RefKind(in.OwnerKind), ID: in.OwnerID}
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	path, err := uc.storage.SaveFile(data, in.Extension)
	if err != nil {
		uc.log.Error().Err(err).Msg("guardar archivo")
		return nil, errors.New("error al guardar el archivo")
	}

	now := time.Now()
	doc := &entity.Document{
		Name:      in.Name,
		Path:      path,
		Extension: in.Extension,
		Private:   in.Private,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actor.ID,
	}
	err = uc.tx.Run(ctx, func(r TxRepos) error {
		id, err := r.Documents.Create(ctx, doc)
		if err != nil {
			return err
		}
		doc.ID = id
		_, err = r.Documents.CreateRelation(ctx, &entity.DocumentRelation{
			DocumentID: id,
			Owner:      owner,
			CreatedAt:  now,
		})
		return err
	})
	if err != nil {
		if rmErr := uc.storage.Remove(path); rmErr != nil {
			uc.log.Warn().Err(rmErr).Str("path", path).Msg("limpiar archivo huérfano")
		}
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// GetByID obtiene un documento; los privados solo los leen admins.
func (uc *DocumentUseCase) GetByID(ctx context.Context, actor domain.Actor, id int64) (*dto.DocumentResponse, error) {
	doc, err := uc.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Private && !domain.Can(actor, domain.ActionReadPrivateDoc, 0) {
		return nil, domain.ErrForbidden
	}
	return toDocumentResponse(doc), nil
}

// List página de documentos con filtro y búsqueda. Los privados se omiten
// para actores no admin, igual que en ListByOwner.
func (uc *DocumentUseCase) List(ctx context.Context, actor domain.Actor, in dto.PageRequest) (*dto.DocumentListResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	params := repository.ListParams{
		Page:   in.Page,
		Filter: repository.Filter{Type: repository.FilterType(in.FilterType), Value: in.FilterValue},
		Search: in.Search,
	}
	list, err := uc.documents.List(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrDataCorrupted) {
			return nil, err
		}
		uc.log.Error().Err(err).Msg("listar documentos")
		return nil, errGettingDocuments
	}
	total, err := uc.documents.Count(ctx, params.Filter)
	if err != nil {
		uc.log.Error().Err(err).Msg("contar documentos")
		return nil, errGettingDocuments
	}
	items := make([]dto.DocumentBriefResponse, 0, len(list))
	for _, b := range list {
		if b.Private && !domain.Can(actor, domain.ActionReadPrivateDoc, 0) {
			continue
		}
		items = append(items, dto.DocumentBriefResponse{
			ID: b.ID, Name: b.Name, Extension: b.Extension, Private: b.Private, CreatedAt: b.CreatedAt,
		})
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: in.Page, Limit: repository.DefaultPageLimit, Total: total},
	}, nil
}

// Download devuelve el documento y sus bytes para descarga; aplica la
// misma regla de privacidad que GetByID.
func (uc *DocumentUseCase) Download(ctx context.Context, actor domain.Actor, id int64) (*dto.GeneratedFileResponse, error) {
	doc, err := uc.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Private && !domain.Can(actor, domain.ActionReadPrivateDoc, 0) {
		return nil, domain.ErrForbidden
	}
	data, err := uc.storage.ReadFile(doc.Path)
	if err != nil {
		uc.log.Error().Err(err).Str("path", doc.Path).Msg("leer archivo")
		return nil, errors.New("error al leer el archivo del documento")
	}
	filename := doc.Name
	if ext := strings.TrimPrefix(doc.Extension, "."); ext != "" {
		filename += "." + ext
	}
	return &dto.GeneratedFileResponse{Filename: filename, Data: data}, nil
}

// ListByOwner documentos relacionados a una entidad dueña. Para actores no
// admin se omiten los privados en la capa de presentación del dueño.
func (uc *DocumentUseCase) ListByOwner(ctx context.Context, actor domain.Actor, owner domain.DocumentRef) ([]dto.DocumentBriefResponse, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	list, err := uc.documents.ListByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, domain.ErrDataCorrupted) {
			return nil, err
		}
		uc.log.Error().Err(err).Msg("listar documentos por dueño")
		return nil, errGettingDocuments
	}
	out := make([]dto.DocumentBriefResponse, 0, len(list))
	for _, b := range list {
		if b.Private && !domain.Can(actor, domain.ActionReadPrivateDoc, 0) {
			continue
		}
		out = append(out, dto.DocumentBriefResponse{
			ID: b.ID, Name: b.Name, Extension: b.Extension, Private: b.Private, CreatedAt: b.CreatedAt,
		})
	}
	return out, nil
}

// Relate vincula un documento existente a otra entidad dueña.
func (uc *DocumentUseCase) Relate(ctx context.Context, actor domain.Actor, documentID int64, in dto.RelateDocumentRequest) error {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	owner := domain.DocumentRef{Kind: domain.RefKind(in.OwnerKind), ID: in.OwnerID}
	if err := owner.Validate(); err != nil {
		return err
	}
	doc, err := uc.documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	_, err = uc.documents.CreateRelation(ctx, &entity.DocumentRelation{
		DocumentID: documentID,
		Owner:      owner,
		CreatedAt:  time.Now(),
	})
	return err
}

// Delete elimina relaciones y documento en una transacción. Un documento
// todavía referenciado solo lo elimina un admin.
func (uc *DocumentUseCase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	doc, err := uc.documents.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.documents.CountRelations(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		if !domain.Can(actor, domain.ActionDeleteRefDocument, 0) {
			return domain.ErrForbidden
		}
	} else if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return domain.ErrForbidden
	}
	err = uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Documents.DeleteRelationsByDocument(ctx, id); err != nil {
			return err
		}
		return r.Documents.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	if rmErr := uc.storage.Remove(doc.Path); rmErr != nil {
		uc.log.Warn().Err(rmErr).Str("path", doc.Path).Msg("eliminar archivo del almacenamiento")
	}
	return nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:        d.ID,
		Name:      d.Name,
		Path:      d.Path,
		Extension: d.Extension,
		Private:   d.Private,
		CreatedAt: d.CreatedAt,
	}
}
