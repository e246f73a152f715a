package memory

import (
	"sort"
	"time"

	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

type postRepository struct {
	store *Store
}

func (r *postRepository) FindByID(id uint) (*model.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	post, ok := r.store.posts[id]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询帖子 id=%d", id)
	}
	return &post, nil
}

func (r *postRepository) FindByIDs(ids []uint) ([]model.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	posts := make([]model.Post, 0, len(ids))
	for _, id := range ids {
		if post, ok := r.store.posts[id]; ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *postRepository) Create(post *model.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextPostID++
	post.ID = r.store.nextPostID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	r.store.posts[post.ID] = *post
	return nil
}

func (r *postRepository) Update(post *model.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.posts[post.ID]; !ok {
		return errorx.Newf(errorx.CodeNotFound, "更新帖子 id=%d", post.ID)
	}
	post.UpdatedAt = time.Now()
	r.store.posts[post.ID] = *post
	return nil
}

func (r *postRepository) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.posts, id)
	return nil
}

func (r *postRepository) ListByType(postType model.PostType, page, pageSize int) ([]model.Post, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var posts []model.Post
	for _, post := range r.store.posts {
		if post.Type == postType {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	total := int64(len(posts))

	start := (page - 1) * pageSize
	if start >= len(posts) {
		return []model.Post{}, total, nil
	}
	end := start + pageSize
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end], total, nil
}

func (r *postRepository) ListByUser(userID uint) ([]model.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var posts []model.Post
	for _, post := range r.store.posts {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *postRepository) AddViewCount(id uint, delta int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	post, ok := r.store.posts[id]
	if !ok {
		return nil
	}
	post.ViewCount += delta
	r.store.posts[id] = post
	return nil
}
