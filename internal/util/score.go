package util

import (
	"math"

	"quintet_backend/internal/model"
)

// PassThreshold 及格线，score >= 40 视为通过
const PassThreshold = 40.0

type scoreBucket struct {
	label    string
	low, top float64
}

// 区间为闭区间；落在 20~21 之间这类空隙中的分数不计入任何分段
var scoreBuckets = []scoreBucket{
	{"0-20", 0, 20},
	{"21-40", 21, 40},
	{"41-60", 41, 60},
	{"61-80", 61, 80},
	{"81-100", 81, 100},
}

// ScoreDistribution 统计各分段人数，五个分段总是全部出现
func ScoreDistribution(scores []float64) model.ScoreDistribution {
	dist := make(model.ScoreDistribution, len(scoreBuckets))
	for _, b := range scoreBuckets {
		dist[b.label] = 0
	}
	for _, s := range scores {
		for _, b := range scoreBuckets {
			if s >= b.low && s <= b.top {
				dist[b.label]++
				break
			}
		}
	}
	return dist
}

// ScoreSummary 一组分数的聚合结果
type ScoreSummary struct {
	Count     int64
	Average   float64
	Max       float64
	Min       float64
	PassCount int64
	FailCount int64
}

// SummarizeScores 空集合时所有字段为 0
func SummarizeScores(scores []float64) ScoreSummary {
	var sum ScoreSummary
	if len(scores) == 0 {
		return sum
	}

	total := 0.0
	sum.Max = math.Inf(-1)
	sum.Min = math.Inf(1)
	for _, s := range scores {
		total += s
		sum.Max = math.Max(sum.Max, s)
		sum.Min = math.Min(sum.Min, s)
		if s >= PassThreshold {
			sum.PassCount++
		} else {
			sum.FailCount++
		}
	}
	sum.Count = int64(len(scores))
	sum.Average = Round2(total / float64(len(scores)))
	return sum
}

// Round2 保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ClampScore 拒绝 NaN/Inf，其余值截断到 [min, max]
func ClampScore(score, min, max float64) (float64, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, ErrInvalidScore
	}
	return math.Min(math.Max(score, min), max), nil
}
