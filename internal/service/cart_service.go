package service

import (
	"sync"

	"minegocio/internal/dto"

	"github.com/google/uuid"
)

// cartLine is the internal cart state for one distinct product code.
type cartLine struct {
	productID    *uuid.UUID
	code         string
	name         string
	categoryID   *uuid.UUID
	categoryName string
	price        int64
	qty          int
}

// CartService keeps one open cart per register, in memory only. A cart
// never touches the database; nothing is persisted until checkout.
// Lines merge on product code and the first-seen unit price wins, so
// re-scanning an item bumps quantity without re-pricing the line.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]cartLine
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string][]cartLine)}
}

// Add inserts or merges a line. Quantities below 1 are rejected before
// any state changes; removals go through SetQty or Remove.
func (s *CartService) Add(registerID string, req dto.CartAddRequest) (dto.CartResponse, error) {
	if req.Qty < 1 {
		return dto.CartResponse{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[registerID]
	merged := false
	for i := range lines {
		if lines[i].code == req.Code {
			lines[i].qty += req.Qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, cartLine{
			productID:    parseOptionalUUID(req.ProductID),
			code:         req.Code,
			name:         req.Name,
			categoryID:   parseOptionalUUID(req.CategoryID),
			categoryName: req.CategoryName,
			price:        req.Price,
			qty:          req.Qty,
		})
	}
	s.carts[registerID] = lines
	return s.render(lines), nil
}

// SetQty replaces the quantity of the line with the given code. Zero or
// negative removes the line. Unknown codes are a no-op.
func (s *CartService) SetQty(registerID, code string, qty int) dto.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[registerID]
	for i := range lines {
		if lines[i].code == code {
			if qty <= 0 {
				lines = append(lines[:i], lines[i+1:]...)
			} else {
				lines[i].qty = qty
			}
			break
		}
	}
	s.carts[registerID] = lines
	return s.render(lines)
}

func (s *CartService) Remove(registerID, code string) dto.CartResponse {
	return s.SetQty(registerID, code, 0)
}

func (s *CartService) Clear(registerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, registerID)
}

func (s *CartService) Get(registerID string) dto.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render(s.carts[registerID])
}

// snapshot returns a copy of the raw lines for checkout.
func (s *CartService) snapshot(registerID string) []cartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[registerID]
	out := make([]cartLine, len(lines))
	copy(out, lines)
	return out
}

func (s *CartService) render(lines []cartLine) dto.CartResponse {
	resp := dto.CartResponse{Lines: make([]dto.CartLine, 0, len(lines))}
	for _, l := range lines {
		sub := int64(l.qty) * l.price
		resp.Lines = append(resp.Lines, dto.CartLine{
			Qty:          l.qty,
			Code:         l.code,
			Name:         l.name,
			CategoryName: l.categoryName,
			Price:        l.price,
			Subtotal:     sub,
		})
		resp.Total += sub
	}
	return resp
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
