package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ressources-relationnelles/api/pkg/database"
)

// 统计结果缓存时长，后台看板接受一分钟内的旧数据
const cacheTTL = 60 * time.Second

// StatsFilter 统计过滤条件
type StatsFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uint
}

// CategoryCount 按分类聚合
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// DateCount 按月份聚合（YYYY-MM）
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// UserCount 用户总数
type UserCount struct {
	Count int64 `json:"count"`
}

// StatsService 后台统计服务
// redis 可选：未配置时每次请求都落库
type StatsService struct {
	db    *gorm.DB
	redis *database.RedisClient
}

// NewStatsService 创建服务实例
func NewStatsService(db *gorm.DB, redis *database.RedisClient) *StatsService {
	return &StatsService{db: db, redis: redis}
}

// RessourcesByCategory 各分类下的资源数量
func (s *StatsService) RessourcesByCategory(ctx context.Context, filter StatsFilter) ([]CategoryCount, error) {
	key := cacheKey("stats:by-category", filter)
	var cached []CategoryCount
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	var results []CategoryCount
	query := s.db.Table("ressources").
		Select("categories.name AS category, COUNT(ressources.id) AS count").
		Joins("JOIN categories ON categories.id = ressources.category_id").
		Group("categories.name")
	query = applyFilter(query, "ressources", filter)

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	if results == nil {
		results = []CategoryCount{}
	}

	s.writeCache(ctx, key, results)
	return results, nil
}

// RessourcesByDate 按月统计资源创建量
func (s *StatsService) RessourcesByDate(ctx context.Context, filter StatsFilter) ([]DateCount, error) {
	key := cacheKey("stats:by-date", filter)
	var cached []DateCount
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	var results []DateCount
	query := s.db.Table("ressources").
		Select("to_char(created_at, 'YYYY-MM') AS date, COUNT(id) AS count").
		Group("to_char(created_at, 'YYYY-MM')").
		Order("date ASC")
	query = applyFilter(query, "ressources", filter)

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	if results == nil {
		results = []DateCount{}
	}

	s.writeCache(ctx, key, results)
	return results, nil
}

// CountUsers 注册用户数
func (s *StatsService) CountUsers(ctx context.Context, filter StatsFilter) (UserCount, error) {
	key := cacheKey("stats:user-count", filter)
	var cached UserCount
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	// 用户表只按注册时间过滤，分类条件不适用
	query := s.db.Table("users")
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("created_at BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return UserCount{}, err
	}

	result := UserCount{Count: count}
	s.writeCache(ctx, key, result)
	return result, nil
}

// applyFilter 时间区间和分类过滤
func applyFilter(query *gorm.DB, table string, filter StatsFilter) *gorm.DB {
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where(table+".created_at BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}
	if filter.CategoryID != nil {
		query = query.Where(table+".category_id = ?", *filter.CategoryID)
	}
	return query
}

func cacheKey(prefix string, filter StatsFilter) string {
	start, end := "", ""
	if filter.StartDate != nil {
		start = filter.StartDate.Format("2006-01-02")
	}
	if filter.EndDate != nil {
		end = filter.EndDate.Format("2006-01-02")
	}
	category := ""
	if filter.CategoryID != nil {
		category = fmt.Sprintf("%d", *filter.CategoryID)
	}
	return fmt.Sprintf("%s:%s:%s:%s", prefix, start, end, category)
}

// readCache 缓存命中时反序列化到 out，任何缓存故障都静默降级为查库
func (s *StatsService) readCache(ctx context.Context, key string, out any) bool {
	if s.redis == nil {
		return false
	}
	raw, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *StatsService) writeCache(ctx context.Context, key string, value any) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.redis.Set(ctx, key, raw, cacheTTL)
}
