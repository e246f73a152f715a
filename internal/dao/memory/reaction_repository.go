package memory

import (
	"sort"
	"time"

	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

type reactionRepository struct {
	store *Store
}

func (r *reactionRepository) FindByTuple(userID uint, targetType model.TargetType, targetID uint, reactionType model.ReactionType) (*model.Reaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, reaction := range r.store.reactions {
		if reaction.UserID == userID && reaction.TargetType == targetType &&
			reaction.TargetID == targetID && reaction.Type == reactionType {
			found := reaction
			return &found, nil
		}
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "查询行为记录 user_id=%d target=%s/%d type=%s",
		userID, targetType, targetID, reactionType)
}

func (r *reactionRepository) Create(reaction *model.Reaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.reactions {
		if existing.UserID == reaction.UserID && existing.TargetType == reaction.TargetType &&
			existing.TargetID == reaction.TargetID && existing.Type == reaction.Type {
			return errorx.New(errorx.CodeDBError, "行为记录重复")
		}
	}
	r.store.nextReactionID++
	reaction.ID = r.store.nextReactionID
	reaction.CreatedAt = time.Now()
	reaction.UpdatedAt = reaction.CreatedAt
	r.store.reactions[reaction.ID] = *reaction
	return nil
}

func (r *reactionRepository) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.reactions, id)
	return nil
}

func (r *reactionRepository) Count(targetType model.TargetType, targetID uint, reactionType model.ReactionType) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, reaction := range r.store.reactions {
		if reaction.TargetType == targetType && reaction.TargetID == targetID && reaction.Type == reactionType {
			count++
		}
	}
	return count, nil
}

func (r *reactionRepository) ListByUserAndType(userID uint, targetType model.TargetType, reactionType model.ReactionType) ([]model.Reaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []model.Reaction
	for _, reaction := range r.store.reactions {
		if reaction.UserID == userID && reaction.TargetType == targetType && reaction.Type == reactionType {
			list = append(list, reaction)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *reactionRepository) ListByType(targetType model.TargetType, reactionType model.ReactionType) ([]model.Reaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []model.Reaction
	for _, reaction := range r.store.reactions {
		if reaction.TargetType == targetType && reaction.Type == reactionType {
			list = append(list, reaction)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}
