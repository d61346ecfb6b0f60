package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/backend/internal/app/models"
	"github.com/campuslink/backend/internal/app/models/dto"
)

func commentRow(id int64, parentID *int64, offset time.Duration) models.CommentWithAuthor {
	base := time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)
	return models.CommentWithAuthor{
		Comment: models.Comment{
			ID:              id,
			PostID:          1,
			AuthorEmail:     "jane@uni.edu",
			Content:         "c",
			ParentCommentID: parentID,
			CreatedAt:       base.Add(offset),
		},
		AuthorName: "Jane Doe",
		AuthorRole: models.RoleStudent,
	}
}

func idPtr(id int64) *int64 { return &id }

func TestBuildCommentTreeNesting(t *testing.T) {
	// 1           (root)
	// ├── 2
	// │   └── 4
	// └── 3
	// 5           (root)
	rows := []models.CommentWithAuthor{
		commentRow(1, nil, 0),
		commentRow(2, idPtr(1), time.Minute),
		commentRow(3, idPtr(1), 2*time.Minute),
		commentRow(4, idPtr(2), 3*time.Minute),
		commentRow(5, nil, 4*time.Minute),
	}

	forest := BuildCommentTree(rows)
	require.Len(t, forest, 2)

	root := forest[0]
	assert.Equal(t, int64(1), root.ID)
	assert.Equal(t, 3, root.ReplyCount)
	require.Len(t, root.Children, 2)

	assert.Equal(t, int64(2), root.Children[0].ID)
	assert.Equal(t, 1, root.Children[0].ReplyCount)
	require.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, int64(4), root.Children[0].Children[0].ID)

	assert.Equal(t, int64(3), root.Children[1].ID)
	assert.Equal(t, 0, root.Children[1].ReplyCount)

	assert.Equal(t, int64(5), forest[1].ID)
	assert.Empty(t, forest[1].Children)
}

func TestBuildCommentTreeSiblingOrderPreserved(t *testing.T) {
	rows := []models.CommentWithAuthor{
		commentRow(10, nil, 0),
		commentRow(11, idPtr(10), time.Minute),
		commentRow(12, idPtr(10), 2*time.Minute),
		commentRow(13, idPtr(10), 3*time.Minute),
	}

	forest := BuildCommentTree(rows)
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 3)
	assert.Equal(t, int64(11), forest[0].Children[0].ID)
	assert.Equal(t, int64(12), forest[0].Children[1].ID)
	assert.Equal(t, int64(13), forest[0].Children[2].ID)
}

func TestBuildCommentTreeExcludesOrphans(t *testing.T) {
	// Comment 99 was deleted; its replies stay in storage but drop out of
	// the rendered forest, transitively.
	rows := []models.CommentWithAuthor{
		commentRow(1, nil, 0),
		commentRow(2, idPtr(99), time.Minute),
		commentRow(3, idPtr(2), 2*time.Minute),
	}

	forest := BuildCommentTree(rows)
	require.Len(t, forest, 1)
	assert.Equal(t, int64(1), forest[0].ID)
	assert.Equal(t, 0, forest[0].ReplyCount)
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	forest := BuildCommentTree(nil)
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
}

func TestBuildCommentTreeNodeCountMatchesReachableRows(t *testing.T) {
	rows := []models.CommentWithAuthor{
		commentRow(1, nil, 0),
		commentRow(2, idPtr(1), time.Minute),
		commentRow(3, idPtr(2), 2*time.Minute),
		commentRow(4, nil, 3*time.Minute),
		commentRow(5, idPtr(4), 4*time.Minute),
	}

	forest := BuildCommentTree(rows)

	var count func(nodes []dto.CommentTreeNode) int
	count = func(nodes []dto.CommentTreeNode) int {
		total := 0
		for _, n := range nodes {
			total += 1 + count(n.Children)
		}
		return total
	}
	assert.Equal(t, len(rows), count(forest))

	// Root ReplyCounts sum to the non-root row count.
	replySum := 0
	for _, root := range forest {
		replySum += root.ReplyCount
	}
	assert.Equal(t, 3, replySum)
}
