package memory

import (
	"sort"
	"time"

	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

type commentRepository struct {
	store *Store
}

func (r *commentRepository) FindByID(id uint) (*model.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	comment, ok := r.store.comments[id]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询评论 id=%d", id)
	}
	return &comment, nil
}

func (r *commentRepository) FindByTypeAndParent(commentType model.CommentType, parentID uint) ([]model.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var comments []model.Comment
	for _, comment := range r.store.comments {
		if comment.Type == commentType && comment.ParentID == parentID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (r *commentRepository) Create(comment *model.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextCommentID++
	comment.ID = r.store.nextCommentID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	r.store.comments[comment.ID] = *comment
	return nil
}

func (r *commentRepository) UpdateContent(id uint, content string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	comment, ok := r.store.comments[id]
	if !ok {
		return nil
	}
	comment.Content = content
	comment.UpdatedAt = time.Now()
	r.store.comments[id] = comment
	return nil
}

func (r *commentRepository) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.comments, id)
	return nil
}
