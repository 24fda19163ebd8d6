package renamer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entolab/ami-camera-utils/pkg/utils"
)

/************************************************************************************************
** Test helpers. Instead of real EXIF blocks, test images carry their capture timestamp as
** file content and contentClock reads it back, so timestamps survive renames and copies.
************************************************************************************************/

const clockLayout = "2006-01-02 15:04:05"

func contentClock(path string) (time.Time, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, false
	}
	stamp, err := time.Parse(clockLayout, strings.TrimSpace(string(data)))
	if err != nil {
		return time.Time{}, false
	}
	return stamp, true
}

func writeImage(t *testing.T, root, name, stamp string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(stamp), 0o644))
	return path
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

/************************************************************************************************
** Planning
************************************************************************************************/

func TestPlanComputesTargets(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "a.JPG", "2025-05-17 14:30:00")
	writeImage(t, root, "b.jpg", "2025-05-17 15:00:00")

	plan, err := Plan(TPlanOptions{Root: root, Prefix: "entocam1", Recursive: true}, contentClock, quietLogger())
	require.NoError(t, err)

	require.Len(t, plan.Entries, 2)
	assert.Equal(t, filepath.Join(root, "entocam1-20250517143000.jpg"), plan.Entries[0].Target)
	assert.Equal(t, filepath.Join(root, "entocam1-20250517150000.jpg"), plan.Entries[1].Target)
	assert.Empty(t, plan.Skipped)
	assert.False(t, plan.Copy())
}

func TestPlanDuplicateTimestampsGetDistinctTargets(t *testing.T) {
	// Two captures at the same second plus a 418-day correction: the duplicate pair must come
	// out with a numeric suffix on the second file, in scan order.
	root := t.TempDir()
	writeImage(t, root, "dup1.jpg", "2024-03-01 10:00:00")
	writeImage(t, root, "dup2.jpg", "2024-03-01 10:00:00")
	writeImage(t, root, "third.jpg", "2024-03-02 09:00:00")

	plan, err := Plan(TPlanOptions{
		Root:      root,
		Prefix:    "cam1",
		Recursive: true,
		Offset:    utils.TOffset{Days: 418},
	}, contentClock, quietLogger())
	require.NoError(t, err)
	require.Len(t, plan.Entries, 3)

	assert.Equal(t, filepath.Join(root, "cam1-20250423100000.jpg"), plan.Entries[0].Target)
	assert.Equal(t, filepath.Join(root, "cam1-20250423100000-1.jpg"), plan.Entries[1].Target)
	assert.Equal(t, filepath.Join(root, "cam1-20250424090000.jpg"), plan.Entries[2].Target)

	seen := make(map[string]bool)
	for _, entry := range plan.Entries {
		assert.False(t, seen[entry.Target], "targets must be pairwise distinct")
		seen[entry.Target] = true
	}
}

func TestPlanSkipsFilesWithoutTimestamp(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "good.jpg", "2025-05-17 14:30:00")
	broken := writeImage(t, root, "broken.jpg", "no metadata here")

	plan, err := Plan(TPlanOptions{Root: root, Prefix: "cam1", Recursive: true}, contentClock, quietLogger())
	require.NoError(t, err)

	assert.Len(t, plan.Entries, 1)
	require.Len(t, plan.Skipped, 1)
	assert.Equal(t, broken, plan.Skipped[0].Path)
	assert.Equal(t, utils.REASON_NO_TIMESTAMP, plan.Skipped[0].Reason)
}

func TestPlanNonRecursiveIgnoresSubdirectories(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "top.jpg", "2025-05-17 14:30:00")
	writeImage(t, root, "sub/nested.jpg", "2025-05-17 15:30:00")

	plan, err := Plan(TPlanOptions{Root: root, Prefix: "cam1", Recursive: false}, contentClock, quietLogger())
	require.NoError(t, err)
	require.Len(t, plan.Entries, 1)
	assert.Equal(t, filepath.Join(root, "top.jpg"), plan.Entries[0].Source)
}

func TestPlanConfigurationErrors(t *testing.T) {
	root := t.TempDir()

	_, err := Plan(TPlanOptions{Root: root, Prefix: "", Recursive: true}, contentClock, quietLogger())
	assert.Error(t, err, "empty prefix")

	_, err = Plan(TPlanOptions{Root: filepath.Join(root, "missing"), Prefix: "cam1"}, contentClock, quietLogger())
	assert.Error(t, err, "nonexistent root")
}

/************************************************************************************************
** Applying
************************************************************************************************/

func TestApplyRenamesInPlace(t *testing.T) {
	root := t.TempDir()
	source := writeImage(t, root, "IMG_0001.jpg", "2025-05-17 14:30:00")

	plan, err := Plan(TPlanOptions{Root: root, Prefix: "cam1", Recursive: true}, contentClock, quietLogger())
	require.NoError(t, err)

	succeeded, failures := Apply(plan, quietLogger())
	assert.Equal(t, 1, succeeded)
	assert.Empty(t, failures)

	assert.NoFileExists(t, source)
	assert.FileExists(t, filepath.Join(root, "cam1-20250517143000.jpg"))
}

func TestApplyIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "IMG_0001.jpg", "2025-05-17 14:30:00")
	opts := TPlanOptions{Root: root, Prefix: "cam1", Recursive: true}

	first, err := Plan(opts, contentClock, quietLogger())
	require.NoError(t, err)
	succeeded, failures := Apply(first, quietLogger())
	require.Equal(t, 1, succeeded)
	require.Empty(t, failures)

	// Re-running over the renamed output plans equal source/target entries and applies as
	// no-op successes.
	second, err := Plan(opts, contentClock, quietLogger())
	require.NoError(t, err)
	require.Len(t, second.Entries, 1)
	assert.Equal(t, second.Entries[0].Source, second.Entries[0].Target)

	succeeded, failures = Apply(second, quietLogger())
	assert.Equal(t, 1, succeeded)
	assert.Empty(t, failures)
	assert.FileExists(t, filepath.Join(root, "cam1-20250517143000.jpg"))
}

func TestReplanAfterSuffixedRenameIsIdempotent(t *testing.T) {
	// After renaming a duplicate-timestamp pair, the output holds cam1-TS.jpg and
	// cam1-TS-1.jpg. The suffixed file sorts lexically before the unsuffixed one, so a naive
	// re-plan would swap their names; instead both must keep their paths.
	root := t.TempDir()
	writeImage(t, root, "dup1.jpg", "2024-03-01 10:00:00")
	writeImage(t, root, "dup2.jpg", "2024-03-01 10:00:00")
	opts := TPlanOptions{
		Root:      root,
		Prefix:    "cam1",
		Recursive: true,
		Offset:    utils.TOffset{Days: 418},
	}

	first, err := Plan(opts, contentClock, quietLogger())
	require.NoError(t, err)
	succeeded, failures := Apply(first, quietLogger())
	require.Equal(t, 2, succeeded)
	require.Empty(t, failures)
	require.FileExists(t, filepath.Join(root, "cam1-20250423100000.jpg"))
	require.FileExists(t, filepath.Join(root, "cam1-20250423100000-1.jpg"))

	second, err := Plan(opts, contentClock, quietLogger())
	require.NoError(t, err)
	require.Len(t, second.Entries, 2)
	for _, entry := range second.Entries {
		assert.Equal(t, entry.Source, entry.Target)
	}

	succeeded, failures = Apply(second, quietLogger())
	assert.Equal(t, 2, succeeded)
	assert.Empty(t, failures)
	assert.FileExists(t, filepath.Join(root, "cam1-20250423100000.jpg"))
	assert.FileExists(t, filepath.Join(root, "cam1-20250423100000-1.jpg"))
}

func TestAlreadyNamedFileKeepsItsTarget(t *testing.T) {
	// A new capture that scans before an already-renamed file with the same timestamp must
	// not steal its name: the already-named file keeps its path, the newcomer is suffixed.
	root := t.TempDir()
	newcomer := writeImage(t, root, "IMG_0001.jpg", "2025-05-17 14:30:00")
	named := writeImage(t, root, "cam1-20250517143000.jpg", "2025-05-17 14:30:00")

	plan, err := Plan(TPlanOptions{Root: root, Prefix: "cam1", Recursive: true}, contentClock, quietLogger())
	require.NoError(t, err)
	require.Len(t, plan.Entries, 2)

	bySource := make(map[string]string, 2)
	for _, entry := range plan.Entries {
		bySource[entry.Source] = entry.Target
	}
	assert.Equal(t, named, bySource[named])
	assert.Equal(t, filepath.Join(root, "cam1-20250517143000-1.jpg"), bySource[newcomer])

	succeeded, failures := Apply(plan, quietLogger())
	assert.Equal(t, 2, succeeded)
	assert.Empty(t, failures)
}

func TestEncodesName(t *testing.T) {
	tests := []struct {
		base     string
		name     string
		expected bool
	}{
		{"cam1-20250423100000.jpg", "cam1-20250423100000.jpg", true},
		{"cam1-20250423100000-1.jpg", "cam1-20250423100000.jpg", true},
		{"cam1-20250423100000-12.jpg", "cam1-20250423100000.jpg", true},
		{"cam1-20250423100000-x.jpg", "cam1-20250423100000.jpg", false},
		{"cam1-20250423100000-.jpg", "cam1-20250423100000.jpg", false},
		{"cam1-20250423100000.JPG", "cam1-20250423100000.jpg", false},
		{"cam1-20250423100001.jpg", "cam1-20250423100000.jpg", false},
		{"IMG_0001.jpg", "cam1-20250423100000.jpg", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, encodesName(tt.base, tt.name), "%s vs %s", tt.base, tt.name)
	}
}

func TestApplyRecordsTargetExistsAndContinues(t *testing.T) {
	root := t.TempDir()
	blocked := writeImage(t, root, "a.jpg", "2025-05-17 14:30:00")
	writeImage(t, root, "b.jpg", "2025-05-17 15:00:00")

	plan, err := Plan(TPlanOptions{Root: root, Prefix: "cam1", Recursive: true}, contentClock, quietLogger())
	require.NoError(t, err)
	require.Len(t, plan.Entries, 2)

	// An unrelated file appears at the first target between planning and applying.
	require.NoError(t, os.WriteFile(plan.Entries[0].Target, []byte("intruder"), 0o644))

	succeeded, failures := Apply(plan, quietLogger())
	assert.Equal(t, 1, succeeded)
	require.Len(t, failures, 1)
	assert.Equal(t, blocked, failures[0].Path)
	assert.Equal(t, utils.REASON_TARGET_EXISTS, failures[0].Reason)

	// The failed source is untouched, the rest of the batch went through.
	assert.FileExists(t, blocked)
	assert.FileExists(t, filepath.Join(root, "cam1-20250517150000.jpg"))
}

func TestApplyCopyModeLeavesSourcesIntact(t *testing.T) {
	root := t.TempDir()
	output := filepath.Join(t.TempDir(), "renamed")
	source := writeImage(t, root, "IMG_0001.jpg", "2025-05-17 14:30:00")

	plan, err := Plan(TPlanOptions{
		Root:      root,
		Prefix:    "cam1",
		Recursive: true,
		OutputDir: output,
	}, contentClock, quietLogger())
	require.NoError(t, err)
	require.True(t, plan.Copy())
	require.Len(t, plan.Entries, 1)
	assert.Equal(t, filepath.Join(output, "cam1-20250517143000.jpg"), plan.Entries[0].Target)

	succeeded, failures := Apply(plan, quietLogger())
	assert.Equal(t, 1, succeeded)
	assert.Empty(t, failures)

	assert.FileExists(t, source)
	data, err := os.ReadFile(filepath.Join(output, "cam1-20250517143000.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "2025-05-17 14:30:00", string(data))
}
