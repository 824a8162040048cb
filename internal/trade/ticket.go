// Package trade validates and submits orders through the proxy API.
// All validation happens client-side before any network call so a bad
// ticket never reaches the execution backend.
package trade

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paiid/paiid/pkg/models"
)

// symbolPattern matches uppercase ticker symbols after normalization,
// allowing class shares like BRK.B.
var symbolPattern = regexp.MustCompile(`^[A-Z]{1,5}(\.[A-Z])?$`)

// Ticket is a draft order as entered in the trade panel, before
// validation. Quantity and limit price are kept as raw strings so the
// panel can report exactly what the user typed.
type Ticket struct {
	Symbol     string
	Side       models.OrderSide
	Type       models.OrderType
	Quantity   string
	LimitPrice string
	Mode       models.TradingMode
}

// Validation errors surfaced on the ticket form.
var (
	ErrEmptySymbol   = errors.New("symbol is required")
	ErrInvalidSymbol = errors.New("symbol must be 1-5 letters")
	ErrInvalidSide   = errors.New("side must be buy or sell")
	ErrInvalidType   = errors.New("order type must be market or limit")
	ErrInvalidMode   = errors.New("trading mode must be live or paper")
)

// Validate normalizes and checks the ticket, returning the order to
// submit. The returned order has no ID or timestamp yet; Submit assigns
// those.
func (t Ticket) Validate() (models.Order, error) {
	symbol := strings.ToUpper(strings.TrimSpace(t.Symbol))
	if symbol == "" {
		return models.Order{}, ErrEmptySymbol
	}
	if !symbolPattern.MatchString(symbol) {
		return models.Order{}, ErrInvalidSymbol
	}

	if !t.Side.Valid() {
		return models.Order{}, ErrInvalidSide
	}
	if !t.Type.Valid() {
		return models.Order{}, ErrInvalidType
	}
	if !t.Mode.Valid() {
		return models.Order{}, ErrInvalidMode
	}

	qty, err := strconv.ParseFloat(strings.TrimSpace(t.Quantity), 64)
	if err != nil || qty <= 0 {
		return models.Order{}, fmt.Errorf("quantity must be a positive number")
	}

	order := models.Order{
		Symbol:   symbol,
		Side:     t.Side,
		Type:     t.Type,
		Quantity: qty,
		Mode:     t.Mode,
	}

	if t.Type == models.OrderLimit {
		price, err := strconv.ParseFloat(strings.TrimSpace(t.LimitPrice), 64)
		if err != nil || price <= 0 {
			return models.Order{}, fmt.Errorf("limit price must be a positive number")
		}
		order.LimitPrice = price
	}

	return order, nil
}
