package memory

import (
	"sort"

	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

type postDetailRepository struct {
	store *Store
}

func (r *postDetailRepository) GetTeamInfo(postID uint) (*model.PostTeamInfo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	info, ok := r.store.teamInfos[postID]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询组队信息 post_id=%d", postID)
	}
	return &info, nil
}

func (r *postDetailRepository) SaveTeamInfo(info *model.PostTeamInfo) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.teamInfos[info.PostID] = *info
	return nil
}

func (r *postDetailRepository) UpdateTeamStatus(postID uint, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	info, ok := r.store.teamInfos[postID]
	if !ok {
		return nil
	}
	info.Status = status
	r.store.teamInfos[postID] = info
	return nil
}

func (r *postDetailRepository) DeleteTeamInfo(postID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.teamInfos, postID)
	return nil
}

func (r *postDetailRepository) GetQnA(postID uint) (*model.PostQnA, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	qna, ok := r.store.qnas[postID]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询问答信息 post_id=%d", postID)
	}
	return &qna, nil
}

func (r *postDetailRepository) SaveQnA(qna *model.PostQnA) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.qnas[qna.PostID] = *qna
	return nil
}

func (r *postDetailRepository) DeleteQnA(postID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.qnas, postID)
	return nil
}

func (r *postDetailRepository) GetJob(postID uint) (*model.PostJob, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	job, ok := r.store.jobs[postID]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询招聘信息 post_id=%d", postID)
	}
	return &job, nil
}

func (r *postDetailRepository) SaveJob(job *model.PostJob) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.jobs[job.PostID] = *job
	return nil
}

func (r *postDetailRepository) DeleteJob(postID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.jobs, postID)
	return nil
}

func (r *postDetailRepository) GetHangout(postID uint) (*model.PostHangout, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	hangout, ok := r.store.hangouts[postID]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询活动信息 post_id=%d", postID)
	}
	return &hangout, nil
}

func (r *postDetailRepository) SaveHangout(hangout *model.PostHangout) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.hangouts[hangout.PostID] = *hangout
	return nil
}

func (r *postDetailRepository) DeleteHangout(postID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.hangouts, postID)
	return nil
}

func (r *postDetailRepository) GetTags(postID uint) ([]model.PostTag, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var tags []model.PostTag
	for _, tag := range r.store.tags {
		if tag.PostID == postID {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

func (r *postDetailRepository) ReplaceTags(postID uint, tags []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, tag := range r.store.tags {
		if tag.PostID == postID {
			delete(r.store.tags, id)
		}
	}
	for _, tag := range tags {
		r.store.nextTagID++
		r.store.tags[r.store.nextTagID] = model.PostTag{
			ID:     r.store.nextTagID,
			PostID: postID,
			Tag:    tag,
		}
	}
	return nil
}

func (r *postDetailRepository) DeleteTags(postID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, tag := range r.store.tags {
		if tag.PostID == postID {
			delete(r.store.tags, id)
		}
	}
	return nil
}
