//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// helpers.go contains conversion utilities between Qdrant types and search
// results.
package qdrant

import (
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"github.com/ragscore/ragscore/search"
)

// toFloat32Slice converts a float64 vector to float32 for the Qdrant API.
func toFloat32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}

// pointIDToStr converts a Qdrant PointId to its string representation.
func pointIDToStr(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Uuid:
		return v.Uuid
	case *qdrant.PointId_Num:
		return strconv.FormatUint(v.Num, 10)
	default:
		return ""
	}
}

// toResults converts scored points to search results, keeping rank order.
func toResults(points []*qdrant.ScoredPoint) []search.Result {
	results := make([]search.Result, 0, len(points))
	for _, pt := range points {
		results = append(results, search.Result{
			ID:      pointIDToStr(pt.Id),
			Score:   float64(pt.Score),
			Payload: convertPayload(pt.Payload),
		})
	}
	return results
}

// convertPayload converts a Qdrant payload to a plain Go map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = convertValueToAny(v)
	}
	return result
}

// convertValueToAny converts a Qdrant Value to its Go native type.
func convertValueToAny(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch k := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return k.StringValue
	case *qdrant.Value_IntegerValue:
		return k.IntegerValue
	case *qdrant.Value_DoubleValue:
		return k.DoubleValue
	case *qdrant.Value_BoolValue:
		return k.BoolValue
	case *qdrant.Value_StructValue:
		if k.StructValue == nil || k.StructValue.Fields == nil {
			return nil
		}
		nested := make(map[string]any, len(k.StructValue.Fields))
		for key, val := range k.StructValue.Fields {
			nested[key] = convertValueToAny(val)
		}
		return nested
	case *qdrant.Value_ListValue:
		if k.ListValue == nil {
			return nil
		}
		list := make([]any, len(k.ListValue.Values))
		for i, lv := range k.ListValue.Values {
			list[i] = convertValueToAny(lv)
		}
		return list
	case *qdrant.Value_NullValue:
		return nil
	default:
		return nil
	}
}
