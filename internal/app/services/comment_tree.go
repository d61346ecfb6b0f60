package services

import (
	"github.com/campuslink/backend/internal/app/models"
	"github.com/campuslink/backend/internal/app/models/dto"
)

// BuildCommentTree reconstructs the nested reply forest from the flat
// comment rows of one post. The input order (created_at ASC) is preserved as
// the sibling order at every depth. The transformation is pure: same rows
// in, same forest out.
//
// A row whose parent id references a comment that no longer exists (a
// soft-orphan left behind by a parent deletion) is excluded from the forest;
// it stays in storage and in the flat listing.
func BuildCommentTree(rows []models.CommentWithAuthor) []dto.CommentTreeNode {
	childrenByParent := make(map[int64][]models.CommentWithAuthor)
	roots := make([]models.CommentWithAuthor, 0)

	for _, row := range rows {
		if row.ParentCommentID == nil {
			roots = append(roots, row)
			continue
		}
		childrenByParent[*row.ParentCommentID] = append(childrenByParent[*row.ParentCommentID], row)
	}

	forest := make([]dto.CommentTreeNode, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, buildSubtree(root, childrenByParent))
	}
	return forest
}

// buildSubtree assembles one node and, transitively, all of its descendants.
// ReplyCount is the total descendant count, not just direct children, so the
// client can render "view N replies" without walking the tree.
func buildSubtree(row models.CommentWithAuthor, childrenByParent map[int64][]models.CommentWithAuthor) dto.CommentTreeNode {
	node := dto.CommentTreeNode{
		CommentResponse: dto.NewCommentResponse(row),
		Children:        []dto.CommentTreeNode{},
	}

	for _, child := range childrenByParent[row.ID] {
		childNode := buildSubtree(child, childrenByParent)
		node.ReplyCount += 1 + childNode.ReplyCount
		node.Children = append(node.Children, childNode)
	}

	return node
}
