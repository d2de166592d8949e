// Package simulator provides the weighted-random outcome generators that
// stand in for a real payment gateway. The distributions are part of the
// service contract, so each simulator keeps its thresholds in an explicit
// cumulative-probability table rather than a chain of comparisons.
package simulator

import (
	"math/rand"
	"net/http"
)

// Outcome is a checkout gateway result code. It is recorded verbatim on the
// authorization ledger.
type Outcome string

const (
	OutcomeSuccess           Outcome = "SUCCESS"
	OutcomeInsufficientFunds Outcome = "INSUFFICIENT_FUNDS"
	OutcomeServerError       Outcome = "SERVER_ERROR"
)

// Source yields a uniform random value in [0, 1). Injectable so tests can
// force a given band.
type Source func() float64

type checkoutBand struct {
	threshold float64
	outcome   Outcome
}

// checkoutTable is the fixed 70/20/10 split of the checkout gateway.
var checkoutTable = []checkoutBand{
	{0.70, OutcomeSuccess},
	{0.90, OutcomeInsufficientFunds},
	{1.00, OutcomeServerError},
}

// Checkout draws weighted-random checkout outcomes.
type Checkout struct {
	roll Source
}

// NewCheckout returns a checkout simulator backed by the given source, or
// math/rand when src is nil.
func NewCheckout(src Source) *Checkout {
	if src == nil {
		src = rand.Float64
	}
	return &Checkout{roll: src}
}

// Pick draws one outcome from the checkout distribution.
func (c *Checkout) Pick() Outcome {
	v := c.roll()
	for _, band := range checkoutTable {
		if v < band.threshold {
			return band.outcome
		}
	}
	return checkoutTable[len(checkoutTable)-1].outcome
}

// AuthorizeResult is the outcome of the standalone one-shot authorization
// endpoint, carrying the HTTP status it maps to.
type AuthorizeResult struct {
	Code       string `json:"code"`
	HTTPStatus int    `json:"-"`
}

type authorizeBand struct {
	threshold float64
	result    AuthorizeResult
}

// authorizeTable is independently parameterized from the checkout table: the
// two simulators model different mock surfaces and are deliberately not
// unified.
var authorizeTable = []authorizeBand{
	{0.60, AuthorizeResult{Code: "APPROVED", HTTPStatus: http.StatusOK}},
	{0.77, AuthorizeResult{Code: "INCORRECT_CARD", HTTPStatus: http.StatusBadRequest}},
	{0.94, AuthorizeResult{Code: "INSUFFICIENT_FUNDS", HTTPStatus: http.StatusPaymentRequired}},
	{1.00, AuthorizeResult{Code: "SERVER_ERROR", HTTPStatus: http.StatusInternalServerError}},
}

// Authorizer draws weighted-random results for the standalone authorize
// endpoint.
type Authorizer struct {
	roll Source
}

// NewAuthorizer returns an authorize simulator backed by the given source, or
// math/rand when src is nil.
func NewAuthorizer(src Source) *Authorizer {
	if src == nil {
		src = rand.Float64
	}
	return &Authorizer{roll: src}
}

// Pick draws one result from the authorize distribution.
func (a *Authorizer) Pick() AuthorizeResult {
	v := a.roll()
	for _, band := range authorizeTable {
		if v < band.threshold {
			return band.result
		}
	}
	return authorizeTable[len(authorizeTable)-1].result
}
