package card

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/card"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/company"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
)

type CardServiceImpl struct {
	db *database.DB
	card.CardRepository
	user.UserRepository
	company.CompanyRepository

	now func() time.Time
}

func NewCardService(
	db *database.DB,
	cardRepo card.CardRepository,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
) card.CardService {
	return &CardServiceImpl{
		db:                db,
		CardRepository:    cardRepo,
		UserRepository:    userRepo,
		CompanyRepository: companyRepo,
		now:               time.Now,
	}
}

// CreateCard implements card.CardService.
func (s *CardServiceImpl) CreateCard(ctx context.Context, req card.CreateCardRequest) (card.CardResponse, error) {
	if err := req.Validate(); err != nil {
		return card.CardResponse{}, err
	}

	exists, err := s.UserRepository.Exists(ctx, req.UserID)
	if err != nil {
		return card.CardResponse{}, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return card.CardResponse{}, user.ErrUserNotFound
	}

	exists, err = s.CompanyRepository.Exists(ctx, req.CompanyID)
	if err != nil {
		return card.CardResponse{}, fmt.Errorf("failed to check company: %w", err)
	}
	if !exists {
		return card.CardResponse{}, company.ErrCompanyNotFound
	}

	if _, err := s.CardRepository.GetByNumber(ctx, req.Number); err == nil {
		return card.CardResponse{}, card.ErrCardNumberTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return card.CardResponse{}, fmt.Errorf("failed to check card number: %w", err)
	}

	data, err := card.NewCard(card.Card{
		Number:    req.Number,
		UserID:    req.UserID,
		CompanyID: req.CompanyID,
		Type:      req.Type,
	})
	if err != nil {
		return card.CardResponse{}, err
	}

	created, err := s.CardRepository.Create(ctx, data)
	if err != nil {
		return card.CardResponse{}, fmt.Errorf("failed to create card: %w", err)
	}

	return mapCardToResponse(created), nil
}

// GetCard implements card.CardService.
func (s *CardServiceImpl) GetCard(ctx context.Context, id int) (card.CardResponse, error) {
	data, err := s.CardRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return card.CardResponse{}, card.ErrCardNotFound
		}
		return card.CardResponse{}, fmt.Errorf("failed to get card: %w", err)
	}
	return mapCardToResponse(data), nil
}

// ListCards implements card.CardService.
func (s *CardServiceImpl) ListCards(ctx context.Context, filter card.CardFilter) (card.ListCardsResponse, error) {
	if err := filter.Validate(); err != nil {
		return card.ListCardsResponse{}, err
	}

	cards, total, err := s.CardRepository.List(ctx, filter)
	if err != nil {
		return card.ListCardsResponse{}, fmt.Errorf("failed to list cards: %w", err)
	}

	responses := make([]card.CardResponse, 0, len(cards))
	for _, c := range cards {
		responses = append(responses, mapCardToResponse(c))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return card.ListCardsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Cards:      responses,
	}, nil
}

// DeleteCard implements card.CardService. Cards are soft-deleted so their
// attendance history stays attributable.
func (s *CardServiceImpl) DeleteCard(ctx context.Context, req card.DeleteCardRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	data, err := s.CardRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return card.ErrCardNotFound
		}
		return fmt.Errorf("failed to get card: %w", err)
	}
	if data.IsDeleted() {
		return card.ErrCardAlreadyDeleted
	}

	isAdmin, err := s.UserRepository.ExistsAdmin(ctx, req.AdminID)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if !isAdmin {
		return user.ErrUserNotFound
	}

	now := s.now().UTC()
	adminID := req.AdminID
	data.DeletedAt = &now
	data.DeletedByID = &adminID

	if err := s.CardRepository.SoftDelete(ctx, data); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

func mapCardToResponse(c card.Card) card.CardResponse {
	resp := card.CardResponse{
		ID:          c.ID,
		Number:      c.Number,
		UserID:      c.UserID,
		UserName:    c.UserName,
		CompanyID:   c.CompanyID,
		Type:        c.Type,
		CreatedAt:   c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   c.UpdatedAt.Format("2006-01-02 15:04:05"),
		DeletedByID: c.DeletedByID,
	}
	if c.DeletedAt != nil {
		deletedAt := c.DeletedAt.Format("2006-01-02 15:04:05")
		resp.DeletedAt = &deletedAt
	}
	return resp
}
