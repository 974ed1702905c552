package workitem_case

import (
	"context"
	"fmt"
	"strings"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseItemRef splits a kind-prefixed reference ("report:<id>" / "task:<id>")
// into its dispatch kind and id.
func parseItemRef(ref string) (entity.WorkItemKind, string, *app_errors.AppError) {
	kind, id, found := strings.Cut(ref, ":")
	if !found || id == "" || !entity.WorkItemKind(kind).IsValid() {
		return "", "", app_errors.NewAppError(
			fiber.StatusBadRequest,
			app_errors.ErrInvalidParam,
			"workitem.invalid_ref",
			fmt.Errorf("malformed item ref %q", ref),
		)
	}
	return entity.WorkItemKind(kind), id, nil
}

func itemRefString(kind entity.WorkItemKind, id string) string {
	return fmt.Sprintf("%s:%s", kind, id)
}

// candidate is the resolved target of an assignment: a roster worker or an
// admin-branch user, normalized to the scope/tier checks.
type candidate struct {
	ref   entity.AssigneeRef
	scope entity.Scope
	tier  int
	role  entity.UserRole
	// userID is the account behind the candidate; empty for roster rows
	// without a linked account.
	userID string
}

// resolveCandidate turns an assignee ref into a candidate. Unknown worker
// codes and unknown user ids both surface as UNKNOWN_ASSIGNEE.
func (s *WorkItemService) resolveCandidate(ctx context.Context, ref entity.AssigneeRef) (*candidate, *app_errors.AppError) {
	switch ref.Kind {
	case entity.AssigneeWorkerCode:
		worker, err := s.ur.GetWorkerByCode(ctx, ref.Value)
		if err != nil {
			return nil, err
		}
		if worker == nil {
			return nil, app_errors.NewAppError(
				fiber.StatusUnprocessableEntity,
				app_errors.ErrUnknownAssignee,
				"assignee.unknown_worker",
				fmt.Errorf("worker code %s not on roster", ref.Value),
			)
		}
		c := &candidate{ref: ref, scope: worker.Scope(), tier: 0, role: entity.RoleWorker}
		if worker.UserID != nil {
			c.userID = *worker.UserID
		}
		return c, nil
	case entity.AssigneeUserID:
		user, err := s.ur.GetUserByID(ctx, ref.Value)
		if err != nil {
			if err.Type == app_errors.ErrNotFound {
				return nil, app_errors.NewAppError(
					fiber.StatusUnprocessableEntity,
					app_errors.ErrUnknownAssignee,
					"assignee.unknown_user",
					fmt.Errorf("user %s not found", ref.Value),
				)
			}
			return nil, err
		}
		if !user.IsActive {
			return nil, app_errors.NewAppError(
				fiber.StatusUnprocessableEntity,
				app_errors.ErrUnknownAssignee,
				"assignee.inactive_user",
				nil,
			)
		}
		return &candidate{ref: ref, scope: user.Scope(), tier: user.Role.Tier(), role: user.Role, userID: user.ID}, nil
	}
	return nil, app_errors.NewAppError(fiber.StatusUnprocessableEntity, app_errors.ErrUnknownAssignee, "assignee.unknown", nil)
}

// verifyAssignAuthority enforces the routing rules: actor must hold an admin
// tier, the candidate must sit strictly below the actor, and the candidate's
// scope must fall inside the actor's. super_admin skips the scope containment.
func verifyAssignAuthority(actor *entity.UserEntity, c *candidate) *app_errors.AppError {
	if !actor.Role.IsAdminTier() {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.not_admin", nil)
	}
	if c.tier >= actor.Role.Tier() {
		return app_errors.NewAppError(
			fiber.StatusForbidden,
			app_errors.ErrScopeViolation,
			"scope.tier_not_lower",
			fmt.Errorf("candidate tier %d not below actor tier %d", c.tier, actor.Role.Tier()),
		)
	}
	if actor.Role == entity.RoleSuperAdmin {
		return nil
	}
	if !actor.Scope().Contains(c.scope) {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.outside_jurisdiction", nil)
	}
	return nil
}

// isItemAssignee reports whether the actor is the current assignee. Reports
// carry refs, so a worker ref matches through the roster's linked account.
func (s *WorkItemService) isItemAssignee(ctx context.Context, actor *entity.UserEntity, kind entity.WorkItemKind, assigneeRaw *string) (bool, *app_errors.AppError) {
	if assigneeRaw == nil {
		return false, nil
	}
	if kind == entity.KindTask {
		return *assigneeRaw == actor.ID, nil
	}
	ref, err := entity.ParseAssigneeRef(*assigneeRaw)
	if err != nil {
		return false, nil
	}
	switch ref.Kind {
	case entity.AssigneeUserID:
		return ref.Value == actor.ID, nil
	case entity.AssigneeWorkerCode:
		worker, appErr := s.ur.GetWorkerByCode(ctx, ref.Value)
		if appErr != nil {
			return false, appErr
		}
		return worker != nil && worker.UserID != nil && *worker.UserID == actor.ID, nil
	}
	return false, nil
}

// assigneeTier resolves the tier of the current assignee for the
// strictly-above rule on reject/cancel/close. Unassigned items count as 0.
func (s *WorkItemService) assigneeTier(ctx context.Context, kind entity.WorkItemKind, assigneeRaw *string) (int, *app_errors.AppError) {
	if assigneeRaw == nil {
		return 0, nil
	}
	if kind == entity.KindTask {
		user, err := s.ur.GetUserByID(ctx, *assigneeRaw)
		if err != nil {
			if err.Type == app_errors.ErrNotFound {
				return 0, nil
			}
			return 0, err
		}
		return user.Role.Tier(), nil
	}
	ref, parseErr := entity.ParseAssigneeRef(*assigneeRaw)
	if parseErr != nil || ref.Kind == entity.AssigneeWorkerCode {
		return 0, nil
	}
	user, err := s.ur.GetUserByID(ctx, ref.Value)
	if err != nil {
		if err.Type == app_errors.ErrNotFound {
			return 0, nil
		}
		return 0, err
	}
	return user.Role.Tier(), nil
}

// insertEvent appends one audit event inside the caller's transaction.
func (s *WorkItemService) insertEvent(ctx context.Context, t tx.Tx, event *entity.AddWorkItemEvent) *app_errors.AppError {
	eventID, idErr := uuid.NewV7()
	if idErr != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}
	event.ID = eventID.String()
	return s.ar.InsertEvent(ctx, t, event)
}
