package authz

import (
	sq "github.com/Masterminds/squirrel"

	"efiling-system/internal/entities"
)

// BuildFileScope computes the predicate limiting which files a caller may
// see. The same Sqlizer must be applied to every aggregate query of a
// request, otherwise the breakdowns contradict each other.
//
// Admins are unconstrained (nil predicate). Everyone else sees files matching
// any of: their department, district, town, division, files they created, or
// files assigned to them. A nil geographic field on the caller is skipped
// entirely — it must never be rendered as "IS NULL" and match arbitrary rows.
//
// When the caller's profile could not be resolved the scope degrades to
// created-by/assigned-to only instead of failing the request.
func BuildFileScope(actor *entities.User, callerID uint64) sq.Sqlizer {
	if actor == nil {
		return sq.Or{
			sq.Eq{"f.created_by": callerID},
			sq.Eq{"f.assigned_to": callerID},
		}
	}

	if actor.IsAdmin() {
		return nil
	}

	var preds sq.Or
	if actor.DepartmentID != nil {
		preds = append(preds, sq.Eq{"f.department_id": *actor.DepartmentID})
	}
	if actor.DistrictID != nil {
		preds = append(preds, sq.Eq{"f.district_id": *actor.DistrictID})
	}
	if actor.TownID != nil {
		preds = append(preds, sq.Eq{"f.town_id": *actor.TownID})
	}
	if actor.DivisionID != nil {
		preds = append(preds, sq.Eq{"f.division_id": *actor.DivisionID})
	}
	preds = append(preds, sq.Eq{"f.created_by": actor.ID})
	preds = append(preds, sq.Eq{"f.assigned_to": actor.ID})

	return preds
}
