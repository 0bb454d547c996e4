package types_test

import (
	"testing"

	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportTarget_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  types.ReportTarget
		wantErr error
	}{
		{
			name:   "content target only",
			target: types.ReportTarget{ContentID: 10, ContentType: enum.ContentTypePost},
		},
		{
			name:   "user target only",
			target: types.ReportTarget{UserID: 20},
		},
		{
			name:    "both targets set",
			target:  types.ReportTarget{ContentID: 10, UserID: 20},
			wantErr: types.ErrInvalidTarget,
		},
		{
			name:    "neither target set",
			target:  types.ReportTarget{},
			wantErr: types.ErrInvalidTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.target.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReportStatus_IsClosed(t *testing.T) {
	t.Parallel()

	assert.False(t, enum.ReportStatusPending.IsClosed())
	assert.False(t, enum.ReportStatusUnderReview.IsClosed())
	assert.True(t, enum.ReportStatusResolved.IsClosed())
	assert.True(t, enum.ReportStatusDismissed.IsClosed())
}

func TestReport_Summary(t *testing.T) {
	t.Parallel()

	report := &types.Report{
		ID:                9,
		ReporterID:        1,
		TargetContentID:   55,
		ContentType:       enum.ContentTypeComment,
		Category:          enum.CategorySpam,
		Severity:          enum.SeverityMedium,
		Status:            enum.ReportStatusPending,
		CommunityID:       3,
		DistinctReporters: 2,
	}

	summary := report.Summary()
	assert.Equal(t, report.ID, summary.ID)
	assert.Equal(t, report.TargetContentID, summary.TargetContentID)
	assert.Equal(t, report.Category, summary.Category)
	assert.Equal(t, report.Severity, summary.Severity)
	assert.Equal(t, report.CommunityID, summary.CommunityID)
	assert.Equal(t, report.DistinctReporters, summary.DistinctReporters)
}
