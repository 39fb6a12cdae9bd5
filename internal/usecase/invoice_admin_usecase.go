package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/domain/fiscalkey"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvalidInvoiceID    = errors.New("invalid invoice id")
	ErrInvalidFiscalKey    = errors.New("invalid fiscal key")
	ErrInvalidInvoice      = errors.New("invalid invoice")
	ErrInvalidProofPhoto   = errors.New("invalid proof photo")
	ErrDuplicateFiscalKey  = entities.ErrDuplicateFiscalKey
	ErrInvoiceListFailed   = errors.New("invoice list failed")
	ErrInvoiceLoadFailed   = errors.New("invoice load failed")
	ErrInvoiceCreateFailed = errors.New("invoice create failed")
	ErrInvoiceUpdateFailed = errors.New("invoice update failed")
	ErrInvoiceDeleteFailed = errors.New("invoice delete failed")
	ErrProofUploadFailed   = errors.New("proof photo upload failed")
	ErrProofAttachFailed   = errors.New("proof photo attach failed")
)

// ValidationError reports one invalid invoice field. It matches ErrInvalidInvoice.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid invoice: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInvoice
}

// SaveInvoiceCommand is the admin form, used for both create (ID empty) and edit.
//
// Dates use YYYY-MM-DD. ProofPhoto is a newly attached file; RemoveProofPhoto
// detaches the current one when no new file is given.
type SaveInvoiceCommand struct {
	ID               string
	InvoiceNumber    string
	FiscalKey        string
	CollectionDate   string
	DeliveryDate     string
	Recipient        string
	City             string
	State            string
	Status           string
	RemoveProofPhoto bool
	ProofPhoto       *interfaces.ProofFile
}

// InvoicePage is one page of the admin listing.
type InvoicePage struct {
	Items      []entities.Invoice
	Pagination Pagination
	State      ListState
}

// IInvoiceAdminUseCase drives the admin panel:
//   - listing with search, status filter and pagination
//   - create/edit through a single form, with optional proof photo
//   - delete, removing the stored photo before the record

type IInvoiceAdminUseCase interface {
	List(ctx context.Context, state ListState) (InvoicePage, error)
	Get(ctx context.Context, id string) (entities.Invoice, error)
	Save(ctx context.Context, cmd SaveInvoiceCommand) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	RemoveProof(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceAdminUseCase struct {
	repo     interfaces.IInvoiceRepository
	storage  interfaces.IProofStorage
	cleanup  interfaces.IProofCleanupQueue
	pageSize int
	now      func() time.Time
}

var _ IInvoiceAdminUseCase = (*InvoiceAdminUseCase)(nil)

// NewInvoiceAdminUseCase wires the admin workflow. cleanup may be nil, in which
// case proof photos that fail to delete are only logged.
func NewInvoiceAdminUseCase(repo interfaces.IInvoiceRepository, storage interfaces.IProofStorage, cleanup interfaces.IProofCleanupQueue, pageSize int) *InvoiceAdminUseCase {
	if pageSize < 1 {
		pageSize = entities.DefaultPageSize
	}
	return &InvoiceAdminUseCase{
		repo:     repo,
		storage:  storage,
		cleanup:  cleanup,
		pageSize: pageSize,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *InvoiceAdminUseCase) List(ctx context.Context, state ListState) (InvoicePage, error) {
	state = NewListState(state.Page, state.Search, state.Status)
	filter := entities.InvoiceFilter{
		Page:     state.Page,
		PageSize: u.pageSize,
		Status:   state.Status,
		Search:   state.Search,
	}

	items, total, err := u.repo.List(ctx, filter)
	if err != nil {
		log.Printf("[invoice][usecase] list failed page=%d status=%q search=%q err=%v", state.Page, state.Status, state.Search, err)
		return InvoicePage{}, fmt.Errorf("%w: %v", ErrInvoiceListFailed, err)
	}
	if items == nil {
		items = []entities.Invoice{}
	}

	return InvoicePage{
		Items:      items,
		Pagination: NewPagination(state.Page, filter.Limit(), total),
		State:      state,
	}, nil
}

func (u *InvoiceAdminUseCase) Get(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[invoice][usecase] get failed id=%s err=%v", id, err)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrInvoiceLoadFailed, err)
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// Save validates the whole form before touching the store, then creates or
// updates the record. A new photo is uploaded under the record id, so on
// create the record is written first, the photo uploaded, and the record
// patched with the resulting URL. Each step fails with its own error.
func (u *InvoiceAdminUseCase) Save(ctx context.Context, cmd SaveInvoiceCommand) (entities.Invoice, error) {
	inv, err := validateSaveCommand(cmd)
	if err != nil {
		return entities.Invoice{}, err
	}

	if strings.TrimSpace(cmd.ID) == "" {
		return u.create(ctx, inv, cmd.ProofPhoto)
	}
	return u.update(ctx, strings.TrimSpace(cmd.ID), inv, cmd)
}

func (u *InvoiceAdminUseCase) create(ctx context.Context, inv entities.Invoice, photo *interfaces.ProofFile) (entities.Invoice, error) {
	now := u.now()
	inv.ID = uuid.NewString()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		if errors.Is(err, entities.ErrDuplicateFiscalKey) {
			log.Printf("[invoice][usecase] create rejected duplicate fiscal_key=%s", inv.FiscalKey)
			return entities.Invoice{}, ErrDuplicateFiscalKey
		}
		log.Printf("[invoice][usecase] create failed fiscal_key=%s err=%v", inv.FiscalKey, err)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrInvoiceCreateFailed, err)
	}
	log.Printf("[invoice][usecase] create success id=%s fiscal_key=%s", created.ID, created.FiscalKey)

	if photo == nil {
		return created, nil
	}
	return u.attachProof(ctx, created, photo)
}

func (u *InvoiceAdminUseCase) update(ctx context.Context, id string, inv entities.Invoice, cmd SaveInvoiceCommand) (entities.Invoice, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[invoice][usecase] update load failed id=%s err=%v", id, err)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrInvoiceLoadFailed, err)
	}
	if current.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	patch := entities.InvoicePatch{
		InvoiceNumber:  &inv.InvoiceNumber,
		FiscalKey:      &inv.FiscalKey,
		CollectionDate: &inv.CollectionDate,
		Recipient:      &inv.Recipient,
		City:           &inv.City,
		State:          &inv.State,
		Status:         &inv.Status,
	}
	if inv.DeliveryDate != nil {
		patch.DeliveryDate = inv.DeliveryDate
	} else {
		patch.ClearDeliveryDate = true
	}
	detach := cmd.RemoveProofPhoto && cmd.ProofPhoto == nil && current.HasProofPhoto()
	if detach {
		patch.ClearProofPhoto = true
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, entities.ErrDuplicateFiscalKey) {
			log.Printf("[invoice][usecase] update rejected duplicate id=%s fiscal_key=%s", id, inv.FiscalKey)
			return entities.Invoice{}, ErrDuplicateFiscalKey
		}
		log.Printf("[invoice][usecase] update failed id=%s err=%v", id, err)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrInvoiceUpdateFailed, err)
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[invoice][usecase] update success id=%s", id)

	if detach {
		u.discardProof(ctx, current)
	}
	if cmd.ProofPhoto == nil {
		return updated, nil
	}

	attached, err := u.attachProof(ctx, updated, cmd.ProofPhoto)
	if err != nil {
		return entities.Invoice{}, err
	}
	if current.HasProofPhoto() {
		u.discardProof(ctx, current)
	}
	return attached, nil
}

// attachProof uploads photo under inv.ID and records the stored path and URL.
func (u *InvoiceAdminUseCase) attachProof(ctx context.Context, inv entities.Invoice, photo *interfaces.ProofFile) (entities.Invoice, error) {
	stored, err := u.storage.Upload(ctx, inv.ID, *photo)
	if err != nil {
		log.Printf("[invoice][usecase] proof upload failed id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrProofUploadFailed, err)
	}
	log.Printf("[invoice][usecase] proof uploaded id=%s path=%s", inv.ID, stored.Path)

	updated, err := u.repo.Update(ctx, inv.ID, entities.InvoicePatch{
		ProofPhoto: &entities.ProofPhoto{Path: stored.Path, URL: stored.URL},
	})
	if err == nil && updated.ID == "" {
		err = ErrInvoiceNotFound
	}
	if err != nil {
		log.Printf("[invoice][usecase] proof attach failed id=%s path=%s err=%v", inv.ID, stored.Path, err)
		u.deleteProofObject(ctx, stored.Path)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrProofAttachFailed, err)
	}
	return updated, nil
}

// Delete removes the proof photo first, then the record. A photo that cannot be
// removed right away is handed to the cleanup queue and never blocks the delete.
func (u *InvoiceAdminUseCase) Delete(ctx context.Context, id string) error {
	inv, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	if inv.HasProofPhoto() {
		u.discardProof(ctx, inv)
	}

	if err := u.repo.Delete(ctx, inv.ID); err != nil {
		log.Printf("[invoice][usecase] delete failed id=%s err=%v", inv.ID, err)
		return fmt.Errorf("%w: %v", ErrInvoiceDeleteFailed, err)
	}
	log.Printf("[invoice][usecase] delete success id=%s", inv.ID)
	return nil
}

// RemoveProof detaches the photo from the record, then deletes the object.
func (u *InvoiceAdminUseCase) RemoveProof(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.Get(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !inv.HasProofPhoto() {
		return inv, nil
	}

	updated, err := u.repo.Update(ctx, inv.ID, entities.InvoicePatch{ClearProofPhoto: true})
	if err != nil {
		log.Printf("[invoice][usecase] proof detach failed id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrInvoiceUpdateFailed, err)
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	u.discardProof(ctx, inv)
	return updated, nil
}

// discardProof removes the photo referenced by inv, best effort.
func (u *InvoiceAdminUseCase) discardProof(ctx context.Context, inv entities.Invoice) {
	path := inv.ProofPhotoPath
	if path == "" {
		p, err := u.storage.PathFromURL(inv.ProofPhotoURL)
		if err != nil {
			log.Printf("[invoice][usecase] proof path unresolvable id=%s url=%s err=%v", inv.ID, inv.ProofPhotoURL, err)
			return
		}
		path = p
	}
	u.deleteProofObject(ctx, path)
}

func (u *InvoiceAdminUseCase) deleteProofObject(ctx context.Context, path string) {
	err := u.storage.Delete(ctx, path)
	if err == nil {
		log.Printf("[invoice][usecase] proof deleted path=%s", path)
		return
	}
	log.Printf("[invoice][usecase] proof delete failed path=%s err=%v", path, err)

	if u.cleanup == nil {
		log.Printf("[invoice][usecase] proof orphaned (no cleanup queue) path=%s", path)
		return
	}
	if qErr := u.cleanup.EnqueueProofDeletion(ctx, path); qErr != nil {
		log.Printf("[invoice][usecase] proof orphaned path=%s enqueue_err=%v", path, qErr)
		return
	}
	log.Printf("[invoice][usecase] proof deletion queued path=%s", path)
}

// validateSaveCommand checks the form without any I/O. The fiscal key is
// checked first so a malformed key is always reported as such.
func validateSaveCommand(cmd SaveInvoiceCommand) (entities.Invoice, error) {
	if !fiscalkey.IsValid(cmd.FiscalKey) {
		return entities.Invoice{}, ErrInvalidFiscalKey
	}

	inv := entities.Invoice{
		InvoiceNumber: strings.TrimSpace(cmd.InvoiceNumber),
		FiscalKey:     fiscalkey.Clean(cmd.FiscalKey),
		Recipient:     strings.TrimSpace(cmd.Recipient),
		City:          strings.TrimSpace(cmd.City),
		State:         strings.ToUpper(strings.TrimSpace(cmd.State)),
	}

	if inv.InvoiceNumber == "" {
		return entities.Invoice{}, &ValidationError{Field: "invoice_number", Message: "Informe o numero da nota fiscal"}
	}
	collection, err := entities.ParseDate(strings.TrimSpace(cmd.CollectionDate))
	if err != nil {
		return entities.Invoice{}, &ValidationError{Field: "collection_date", Message: "Informe uma data de coleta valida"}
	}
	inv.CollectionDate = collection
	if inv.Recipient == "" {
		return entities.Invoice{}, &ValidationError{Field: "recipient", Message: "Informe o destinatario"}
	}
	if inv.City == "" {
		return entities.Invoice{}, &ValidationError{Field: "city", Message: "Informe a cidade"}
	}
	if !entities.IsBrazilianState(inv.State) {
		return entities.Invoice{}, &ValidationError{Field: "state", Message: "Selecione um estado valido"}
	}

	inv.Status = entities.InvoiceStatusAguardandoColeta
	if raw := strings.TrimSpace(cmd.Status); raw != "" {
		st, ok := entities.ParseInvoiceStatus(raw)
		if !ok {
			return entities.Invoice{}, &ValidationError{Field: "status", Message: "Selecione um status valido"}
		}
		inv.Status = st
	}

	if raw := strings.TrimSpace(cmd.DeliveryDate); raw != "" {
		delivery, err := entities.ParseDate(raw)
		if err != nil {
			return entities.Invoice{}, &ValidationError{Field: "delivery_date", Message: "Informe uma data de entrega valida"}
		}
		if !inv.Status.IsDelivered() {
			return entities.Invoice{}, &ValidationError{Field: "delivery_date", Message: "A data de entrega so pode ser informada para notas entregues"}
		}
		if delivery.Before(collection) {
			return entities.Invoice{}, &ValidationError{Field: "delivery_date", Message: "A data de entrega nao pode ser anterior a coleta"}
		}
		inv.DeliveryDate = &delivery
	}

	if cmd.ProofPhoto != nil {
		if !strings.HasPrefix(cmd.ProofPhoto.ContentType, "image/") || cmd.ProofPhoto.Body == nil {
			return entities.Invoice{}, ErrInvalidProofPhoto
		}
	}
	return inv, nil
}
