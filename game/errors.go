package game

import (
	"errors"
	"fmt"
)

// IllegalReason identifies why a transition rejected an action.
type IllegalReason int

const (
	ReasonUnknown IllegalReason = iota
	ReasonInsufficientFunds
	ReasonAlreadyOwned
	ReasonNotOwner
	ReasonNotPurchasable
	ReasonNoMonopoly
	ReasonUnevenBuilding
	ReasonHouseShortage
	ReasonHotelShortage
	ReasonMortgaged
	ReasonNotMortgaged
	ReasonDeveloped
	ReasonMaxDevelopment
	ReasonNoDevelopment
	ReasonWrongPhase
	ReasonNotInJail
	ReasonNoJailCard
	ReasonNoAuction
	ReasonBidTooLow
	ReasonNotBidder
	ReasonNoTrade
	ReasonTradePending
	ReasonBadTradeTemplate
	ReasonPlayerBankrupt
	ReasonGameOver
)

var reasonNames = map[IllegalReason]string{
	ReasonUnknown:           "unknown",
	ReasonInsufficientFunds: "insufficient funds",
	ReasonAlreadyOwned:      "already owned",
	ReasonNotOwner:          "not the owner",
	ReasonNotPurchasable:    "tile is not purchasable",
	ReasonNoMonopoly:        "full group not owned",
	ReasonUnevenBuilding:    "uneven building",
	ReasonHouseShortage:     "no houses left in the bank",
	ReasonHotelShortage:     "no hotels left in the bank",
	ReasonMortgaged:         "property is mortgaged",
	ReasonNotMortgaged:      "property is not mortgaged",
	ReasonDeveloped:         "property carries buildings",
	ReasonMaxDevelopment:    "already at hotel",
	ReasonNoDevelopment:     "no buildings to sell",
	ReasonWrongPhase:        "not legal in this phase",
	ReasonNotInJail:         "player is not in jail",
	ReasonNoJailCard:        "no get-out-of-jail card held",
	ReasonNoAuction:         "no auction in progress",
	ReasonBidTooLow:         "bid does not beat the current high bid",
	ReasonNotBidder:         "player is not an eligible bidder",
	ReasonNoTrade:           "no trade offer pending",
	ReasonTradePending:      "a trade offer is already pending",
	ReasonBadTradeTemplate:  "trade template cannot be resolved",
	ReasonPlayerBankrupt:    "player is bankrupt",
	ReasonGameOver:          "game is over",
}

func (r IllegalReason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// RuleError reports an expected rule violation. The state passed to the
// failing transition is unchanged.
type RuleError struct {
	Reason IllegalReason
	Player int // acting player, -1 if not applicable
	Tile   int // tile involved, -1 if not applicable
}

func (e *RuleError) Error() string {
	msg := fmt.Sprintf("illegal action: %s", e.Reason)
	if e.Tile >= 0 {
		msg += fmt.Sprintf(" (tile %d)", e.Tile)
	}
	return msg
}

func illegal(reason IllegalReason, player, tile int) error {
	return &RuleError{Reason: reason, Player: player, Tile: tile}
}

// IsIllegal reports whether err is a RuleError with the given reason.
func IsIllegal(err error, reason IllegalReason) bool {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Reason == reason
	}
	return false
}

// ErrInsolvent signals that a payment obligation exceeds what the debtor can
// raise even after liquidating every mortgageable asset. The caller must
// route to BankruptPlayer instead of retrying the payment.
var ErrInsolvent = errors.New("player is insolvent")

// ConfigError reports a board configuration violation. Loading fails
// atomically; no partial board is returned.
type ConfigError struct {
	Field string
	Tile  int // offending tile id, -1 if the error is not tile-scoped
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Tile >= 0 {
		return fmt.Sprintf("board config: tile %d: %s: %s", e.Tile, e.Field, e.Msg)
	}
	return fmt.Sprintf("board config: %s: %s", e.Field, e.Msg)
}

func configErr(field string, tile int, format string, args ...any) error {
	return &ConfigError{Field: field, Tile: tile, Msg: fmt.Sprintf(format, args...)}
}
