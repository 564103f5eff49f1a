package linger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectGroups(t *testing.T, src string) []*Group {
	t.Helper()
	scan := NewGroupScanner([]byte(src))
	var groups []*Group
	for {
		grp, err := scan.Next()
		require.NoError(t, err)
		if grp == nil {
			return groups
		}
		groups = append(groups, grp)
	}
}

func TestGroupSingleBlock(t *testing.T) {
	src := "# exp1 3 cond1\nThe cat sat.\n? Did the cat sit? y\n"
	groups := collectGroups(t, src)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"# exp1 3 cond1", "The cat sat.", "? Did the cat sit? y"}, groups[0].Lines)
	assert.Equal(t, 1, groups[0].Line)
}

func TestGroupBlankSeparatedBlocks(t *testing.T) {
	src := "# exp1 1 a\nFirst sentence.\n\n# exp1 2 b\nSecond sentence.\n"
	groups := collectGroups(t, src)
	require.Len(t, groups, 2)
	assert.Equal(t, "First sentence.", groups[0].Lines[1])
	assert.Equal(t, "Second sentence.", groups[1].Lines[1])
	assert.Equal(t, 1, groups[0].Line)
	assert.Equal(t, 4, groups[1].Line)
}

func TestGroupSpecSplitWithinBlock(t *testing.T) {
	src := "# exp1 1 a\nFirst sentence.\n# exp1 2 b\nSecond sentence.\n? A question? y\n"
	groups := collectGroups(t, src)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"# exp1 1 a", "First sentence."}, groups[0].Lines)
	assert.Equal(t, []string{"# exp1 2 b", "Second sentence.", "? A question? y"}, groups[1].Lines)
}

func TestGroupBlankRunsYieldNothing(t *testing.T) {
	src := "\n\n# exp1 1 a\nOne.\n\n\n\n# exp1 2 b\nTwo.\n\n\n"
	groups := collectGroups(t, src)
	require.Len(t, groups, 2)
	assert.Equal(t, 3, groups[0].Line)
	assert.Equal(t, 8, groups[1].Line)
}

func TestGroupWhitespaceOnlyLineIsBlank(t *testing.T) {
	src := "# exp1 1 a\nOne.\n   \t\n# exp1 2 b\nTwo.\n"
	groups := collectGroups(t, src)
	require.Len(t, groups, 2)
}

func TestGroupLinesAreTrimmed(t *testing.T) {
	src := "  # exp1 1 a  \n  One.  \n"
	groups := collectGroups(t, src)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"# exp1 1 a", "One."}, groups[0].Lines)
}

func TestGroupEmptyInput(t *testing.T) {
	assert.Empty(t, collectGroups(t, ""))
	assert.Empty(t, collectGroups(t, "\n\n\n"))
}

func TestGroupMissingFinalNewline(t *testing.T) {
	groups := collectGroups(t, "# exp1 1 a\nOne.")
	require.Len(t, groups, 1)
	assert.Equal(t, "One.", groups[0].Lines[1])
}

func TestGroupBlockNotOpenedBySpecLine(t *testing.T) {
	scan := NewGroupScanner([]byte("Just a bare sentence.\n"))
	grp, err := scan.Next()
	require.Error(t, err)
	assert.Nil(t, grp)
	var groupErr *GroupError
	require.ErrorAs(t, err, &groupErr)
	assert.Equal(t, 1, groupErr.Line)
}

func TestGroupSecondBlockNotOpenedBySpecLine(t *testing.T) {
	scan := NewGroupScanner([]byte("# exp1 1 a\nOne.\n\nStray sentence.\n"))
	grp, err := scan.Next()
	require.NoError(t, err)
	require.NotNil(t, grp)

	_, err = scan.Next()
	var groupErr *GroupError
	require.ErrorAs(t, err, &groupErr)
	assert.Equal(t, 4, groupErr.Line)
}
