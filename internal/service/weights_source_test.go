package service

import (
	"learnhub_backend/internal/model"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightsSourceLoadStore(t *testing.T) {
	src := NewWeightsSource(DefaultScoreWeights())
	assert.Equal(t, DefaultScoreWeights(), src.Load())
	assert.Equal(t, uint64(0), src.Epoch())

	updated := DefaultScoreWeights()
	updated.GapFill = 30
	src.Store(updated)

	assert.Equal(t, updated, src.Load())
	assert.Equal(t, uint64(1), src.Epoch())
}

func TestWeightsSourceConcurrentReloadDuringScoring(t *testing.T) {
	src := NewWeightsSource(DefaultScoreWeights())

	reloaded := DefaultScoreWeights()
	reloaded.GapFill = 36
	reloaded.GoalBonus = 40

	profile := fullStackProfile()
	catalog := []model.CatalogItem{*pythonDataItem()}

	// 打分快照只能是两套权重之一，不能读到换了一半的混合值
	wantOld := ScoreCatalog(profile, catalog, DefaultScoreWeights())[0].AffinityScore
	wantNew := ScoreCatalog(profile, catalog, reloaded)[0].AffinityScore

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				src.Store(reloaded)
			} else {
				src.Store(DefaultScoreWeights())
			}
		}
	}()

	errs := make(chan int, 400)
	go func() {
		defer wg.Done()
		for i := 0; i < 400; i++ {
			got := ScoreCatalog(profile, catalog, src.Load())[0].AffinityScore
			if got != wantOld && got != wantNew {
				errs <- got
			}
		}
	}()

	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("score %d computed from a mixed weight set (want %d or %d)", got, wantOld, wantNew)
	}
}
