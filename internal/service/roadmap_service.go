package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"pathwise_backend/internal/llm"
	"pathwise_backend/internal/model"
	"pathwise_backend/internal/util"
	"pathwise_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RoadmapService runs the roadmap generation pipeline: topic gate, prompt
// build, one generation call, strict JSON parse. A malformed response is a
// terminal schema error; there is no retry and no repair attempt.
type RoadmapService struct {
	Generator llm.Generator
	Prompts   PromptBuilder
	Redis     *redis.Client
	CacheTTL  time.Duration
}

func NewRoadmapService(generator llm.Generator, rdb *redis.Client, cacheTTL time.Duration) *RoadmapService {
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}
	return &RoadmapService{
		Generator: generator,
		Redis:     rdb,
		CacheTTL:  cacheTTL,
	}
}

func (s *RoadmapService) Generate(ctx context.Context, topic, timeframe, knowledgeLevel string) (model.Roadmap, error) {
	if !IsValidTopic(topic) {
		return nil, util.ErrInvalidTopic
	}

	cacheKey := roadmapCacheKey(topic, timeframe, knowledgeLevel)
	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	raw, err := s.Generator.Generate(ctx, s.Prompts.Roadmap(topic, timeframe, knowledgeLevel))
	if err != nil {
		return nil, err
	}

	var roadmap model.Roadmap
	if err := json.Unmarshal([]byte(raw), &roadmap); err != nil {
		return nil, &util.SchemaError{Raw: raw, Err: err}
	}
	trimRoadmap(roadmap)

	s.cacheSet(ctx, cacheKey, roadmap)
	return roadmap, nil
}

func trimRoadmap(roadmap model.Roadmap) {
	for label, week := range roadmap {
		week.Topic = strings.TrimSpace(week.Topic)
		for i, sub := range week.Subtopics {
			week.Subtopics[i] = model.Subtopic{
				Subtopic:    strings.TrimSpace(sub.Subtopic),
				Time:        strings.TrimSpace(sub.Time),
				Description: strings.TrimSpace(sub.Description),
			}
		}
		roadmap[label] = week
	}
}

func roadmapCacheKey(topic, timeframe, knowledgeLevel string) string {
	sum := sha1.Sum([]byte(strings.ToLower(topic) + "|" + timeframe + "|" + knowledgeLevel))
	return "roadmap:" + hex.EncodeToString(sum[:])
}

func (s *RoadmapService) cacheGet(ctx context.Context, key string) model.Roadmap {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var roadmap model.Roadmap
	if err := json.Unmarshal(data, &roadmap); err != nil {
		return nil
	}
	return roadmap
}

func (s *RoadmapService) cacheSet(ctx context.Context, key string, roadmap model.Roadmap) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(roadmap)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("roadmap cache write failed", zap.Error(err))
	}
}
