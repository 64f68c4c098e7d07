//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ragscore/ragscore/evaluation"
)

type entryEvalParam struct {
	idx     int
	ctx     context.Context
	req     *evaluation.Request
	eval    *evaluation.Evaluator
	results []*entryResult
	wg      *sync.WaitGroup
}

func (p *entryEvalParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.req = nil
	p.eval = nil
	p.results = nil
	p.wg = nil
}

var entryEvalParamPool = &sync.Pool{
	New: func() any { return new(entryEvalParam) },
}

func createEntryEvalPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*entryEvalParam)
		if !ok {
			panic("entry evaluation pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			entryEvalParamPool.Put(param)
		}()
		result, err := param.eval.Evaluate(param.ctx, param.req)
		param.results[param.idx] = &entryResult{index: param.idx, result: result, err: err}
	})
	if err != nil {
		return nil, fmt.Errorf("create entry evaluation pool: %w", err)
	}
	return pool, nil
}
