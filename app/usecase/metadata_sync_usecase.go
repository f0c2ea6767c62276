package usecase

import (
	"context"
	"fmt"
	"time"

	"user-admin-service/app/domain"
)

const msgSyncReadFailed = "Failed to fetch profiles"

// SyncAllUsersAppMetadata repairs drift between profiles.role and every
// identity's authoritative role metadata. Profiles are walked sequentially;
// one bad record never aborts the batch, and once the initial read succeeded
// the batch is reported as a success regardless of per-item failures. The
// accumulated per-user error strings are surfaced in Details.
func (u *UserAdminInteractor) SyncAllUsersAppMetadata(ctx context.Context) (result *domain.ActionResult) {
	defer u.recoverToResult(&result, msgSyncReadFailed, "sync_all_users_app_metadata")

	syncId := fmt.Sprintf("SYNC-ALL-%d", time.Now().UnixNano())
	u.logger.Info("🔄 Starting bulk app metadata synchronization", "sync_id", syncId)

	assignments, err := u.profileGateway.ListRoleAssignments(ctx)
	if err != nil {
		u.logger.Error("failed to fetch profiles for sync",
			"sync_id", syncId,
			"error", err)
		return domain.Fail(msgSyncReadFailed, err)
	}

	if len(assignments) == 0 {
		u.logger.Info("no profiles found to sync", "sync_id", syncId)
		return domain.Succeed("No profiles found to sync")
	}

	successCount := 0
	errorCount := 0
	var errorDetails []string

	for _, assignment := range assignments {
		err := u.syncOne(ctx, assignment)
		if err != nil {
			u.logger.Error("failed to sync individual user",
				"sync_id", syncId,
				"user_id", assignment.UserID,
				"error", err)
			errorCount++
			errorDetails = append(errorDetails, err.Error())
			continue
		}
		successCount++
	}

	u.logger.Info("✅ Bulk app metadata synchronization completed",
		"sync_id", syncId,
		"success_count", successCount,
		"error_count", errorCount)

	result = domain.Succeed(fmt.Sprintf("Synced app_metadata for %d users. %d errors.", successCount, errorCount))
	result.Details = errorDetails
	return result
}

// syncOne updates one identity's role metadata, converting panics into the
// same error stream as service-reported failures so the loop keeps going.
func (u *UserAdminInteractor) syncOne(ctx context.Context, assignment domain.RoleAssignment) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Exception updating user %s: %v", assignment.UserID, r)
		}
	}()

	if updateErr := u.identityGateway.UpdateAppMetadata(ctx, assignment.UserID, assignment.Role); updateErr != nil {
		return fmt.Errorf("Error updating user %s: %s", assignment.UserID, updateErr.Error())
	}

	return nil
}
