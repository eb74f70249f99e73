package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/frolovpd/shopwindow/internal/client/api"
	"github.com/frolovpd/shopwindow/internal/logging"
)

// UsersEmptyMessage is shown instead of an empty grid when nothing matches
// the current search and gender facet.
const UsersEmptyMessage = "no users found"

// Gender is the equality facet applied alongside the free-text search.
type Gender string

const (
	GenderAll    Gender = "all"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender validates a facet value typed by the user.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(s)) {
	case GenderAll:
		return GenderAll, nil
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	}
	return "", fmt.Errorf("unknown gender filter %q (use all, male or female)", s)
}

// UsersView fetches the user collection once per activation and derives a
// filtered slice from the search query and the gender facet.
type UsersView struct {
	client api.Client
	log    logging.Logger

	users  []api.User
	total  int
	query  string
	gender Gender
	errMsg string
	loaded bool
}

func NewUsersView(client api.Client, log logging.Logger) *UsersView {
	return &UsersView{client: client, log: log.With("view", "users"), gender: GenderAll}
}

// Activate issues exactly one list fetch; failures become a user-visible
// message. Re-activating re-fetches and keeps the current filters.
func (v *UsersView) Activate(ctx context.Context) {
	v.users = nil
	v.total = 0
	v.errMsg = ""
	v.loaded = false

	list, err := v.client.ListUsers(ctx)
	if err != nil {
		v.log.Warn(ctx, "user fetch failed", "error", err.Error())
		v.errMsg = "failed to load users, please try again later"
		return
	}

	v.users = list.Users
	v.total = list.Total
	v.loaded = true
}

// SetQuery updates the search text. Purely local; never fetches.
func (v *UsersView) SetQuery(q string) {
	v.query = q
}

func (v *UsersView) Query() string {
	return v.query
}

// SetGender updates the facet filter.
func (v *UsersView) SetGender(g Gender) {
	v.gender = g
}

func (v *UsersView) Gender() Gender {
	return v.gender
}

// Visible derives the filtered slice. Both predicates must hold: the
// firstName+lastName pair case-insensitively contains the query, and the
// facet is either "all" or equal to the record's gender. The source slice
// is never mutated.
func (v *UsersView) Visible() []api.User {
	q := strings.ToLower(v.query)
	var out []api.User
	for _, u := range v.users {
		if q != "" {
			name := strings.ToLower(u.FirstName + " " + u.LastName)
			if !strings.Contains(name, q) {
				continue
			}
		}
		if v.gender != GenderAll && u.Gender != string(v.gender) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Err returns the user-visible fetch error message, "" when the last
// activation succeeded.
func (v *UsersView) Err() string {
	return v.errMsg
}

// Loaded reports whether the collection has been fetched successfully.
func (v *UsersView) Loaded() bool {
	return v.loaded
}

// Total is the server-reported collection size (pagination metadata).
func (v *UsersView) Total() int {
	return v.total
}
