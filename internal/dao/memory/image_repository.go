package memory

import (
	"sort"

	"outspecs_server/internal/model"
)

type imageRepository struct {
	store *Store
}

func (r *imageRepository) FindByPostID(postID uint) ([]model.Image, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var images []model.Image
	for _, image := range r.store.images {
		if image.PostID == postID {
			images = append(images, image)
		}
	}
	sort.Slice(images, func(i, j int) bool { return images[i].ID < images[j].ID })
	return images, nil
}

func (r *imageRepository) CreateBatch(images []model.Image) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range images {
		r.store.nextImageID++
		images[i].ID = r.store.nextImageID
		r.store.images[images[i].ID] = images[i]
	}
	return nil
}

func (r *imageRepository) DeleteByPostID(postID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, image := range r.store.images {
		if image.PostID == postID {
			delete(r.store.images, id)
		}
	}
	return nil
}
