// Package detail loads a single title or contributor addressed by a route id.
package detail

import (
	"context"
	"strconv"

	"github.com/s0up4200/marquee/catalog"
)

// Outcome tells the caller what to do after Open
type Outcome int

const (
	// OutcomeRedirect means the id was invalid; go home without a request
	OutcomeRedirect Outcome = iota
	// OutcomeFetch means the returned ticket must be fetched
	OutcomeFetch
	// OutcomeUnchanged means the id is already loaded or loading
	OutcomeUnchanged
)

// Status is the loading/error/loaded triad exposed to views
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

// Ticket identifies one detail request
type Ticket struct {
	ID         int
	Generation uint64
}

// Loader fetches one entity by id. Client.GetTitleDetails and Client.GetContributorDetails fit.
type Loader[T any] func(ctx context.Context, id int) (*T, error)

// Result is the outcome of running a ticket
type Result[T any] struct {
	Ticket Ticket
	Data   *T
	Err    error
}

// Controller tracks one detail view. The zero value is ready to use.
type Controller[T any] struct {
	id         int
	generation uint64
	status     Status
	data       *T
	err        error
}

// TitleController loads title details
type TitleController = Controller[catalog.TitleDetails]

// ContributorController loads contributor details
type ContributorController = Controller[catalog.ContributorDetails]

// ParseID parses a route id. Only base-10 integers greater than zero are valid.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Open handles a route id. A new valid id starts a load and invalidates any earlier ticket.
func (c *Controller[T]) Open(raw string) (Ticket, Outcome) {
	id, ok := ParseID(raw)
	if !ok {
		return Ticket{}, OutcomeRedirect
	}
	if id == c.id && c.status != StatusIdle {
		return Ticket{}, OutcomeUnchanged
	}
	return c.start(id), OutcomeFetch
}

// Reload refetches the current id, typically after an error
func (c *Controller[T]) Reload() (Ticket, bool) {
	if c.id == 0 || c.status == StatusLoading {
		return Ticket{}, false
	}
	return c.start(c.id), true
}

// Fetch runs a ticket without touching controller state
func (c *Controller[T]) Fetch(ctx context.Context, load Loader[T], t Ticket) Result[T] {
	data, err := load(ctx, t.ID)
	return Result[T]{Ticket: t, Data: data, Err: err}
}

// Apply stores a result if its ticket is still the current one
func (c *Controller[T]) Apply(res Result[T]) bool {
	if res.Ticket.Generation != c.generation || res.Ticket.ID != c.id || c.status != StatusLoading {
		return false
	}
	if res.Err != nil {
		c.status = StatusError
		c.err = res.Err
		c.data = nil
		return true
	}
	c.status = StatusLoaded
	c.data = res.Data
	return true
}

// Close tears the view down; results still in flight are dropped
func (c *Controller[T]) Close() {
	c.generation++
	c.id = 0
	c.status = StatusIdle
	c.data = nil
	c.err = nil
}

// ID returns the id being shown, or zero
func (c *Controller[T]) ID() int { return c.id }

// Status returns the load state
func (c *Controller[T]) Status() Status { return c.status }

// Data returns the loaded entity, or nil
func (c *Controller[T]) Data() *T { return c.data }

// Err returns the load error, if any
func (c *Controller[T]) Err() error { return c.err }

func (c *Controller[T]) start(id int) Ticket {
	c.generation++
	c.id = id
	c.status = StatusLoading
	c.data = nil
	c.err = nil
	return Ticket{ID: id, Generation: c.generation}
}

// DistinctRoles returns each role across titles once, in first-seen order
func DistinctRoles(titles []catalog.ContributorTitle) []string {
	seen := make(map[string]struct{})
	var roles []string
	for _, t := range titles {
		for _, role := range t.Roles {
			if _, ok := seen[role]; ok {
				continue
			}
			seen[role] = struct{}{}
			roles = append(roles, role)
		}
	}
	return roles
}
