package maplist

import (
	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"

	"maplist-generator/internal/mappool"
)

var requestValidate *validator.Validate

func init() {
	requestValidate = validator.New(validator.WithRequiredStructEnabled())
	_ = requestValidate.RegisterValidation("mode", validateMode)
	requestValidate.RegisterStructValidation(validateTeamIDs, Request{})
}

func validateMode(fl validator.FieldLevel) bool {
	return mappool.Mode(fl.Field().String()).Valid()
}

func validateTeamIDs(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(Request)
	if !ok {
		return
	}
	if req.Teams[0].ID == req.Teams[1].ID {
		sl.ReportError(req.Teams, "Teams", "Teams", "distinctids", "")
	}
}

// Validate checks the request before any search is attempted. Every pair must
// use an included mode and a team pool must not list a pair twice.
func (r Request) Validate() error {
	if err := requestValidate.Struct(r); err != nil {
		return eris.Wrapf(ErrInvalidRequest, "%v", err)
	}

	included := make(map[mappool.Mode]bool, len(r.ModesIncluded))
	for _, m := range r.ModesIncluded {
		included[m] = true
	}

	for _, team := range r.Teams {
		if dupes := team.Pool.Duplicates(); len(dupes) > 0 {
			return eris.Wrapf(ErrInvalidRequest, "team %d submitted %s more than once", team.ID, dupes[0])
		}
		for _, p := range team.Pool.Pairs() {
			if !included[p.Mode] {
				return eris.Wrapf(ErrInvalidRequest, "team %d submitted %s but mode %s is not included", team.ID, p, p.Mode)
			}
		}
	}
	for _, p := range r.TiebreakerPool.Pairs() {
		if !included[p.Mode] {
			return eris.Wrapf(ErrInvalidRequest, "tiebreaker %s uses mode %s which is not included", p, p.Mode)
		}
	}
	return nil
}
