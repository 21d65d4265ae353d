// xrange.go
package sparkline

// resolveXRange returns the explicit range when one was supplied; otherwise
// it derives one from the non-null values of the value columns, padded on
// both sides. With no data at all it falls back to the default range.
func resolveXRange(ds *Dataset, columns []string, explicit *AxisRange, defs *Defaults) AxisRange {
	if explicit != nil {
		return *explicit
	}
	var vals []float64
	for _, col := range columns {
		vals = append(vals, ds.NonNull(col)...)
	}
	if len(vals) == 0 {
		return defs.FallbackRange
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return AxisRange{Lo: lo - defs.RangePadding, Hi: hi + defs.RangePadding}
}

// yRange is derived from the series count alone so row spacing stays
// consistent regardless of value magnitudes.
func yRange(seriesCount int) AxisRange {
	return AxisRange{Lo: 0, Hi: float64(seriesCount + 1)}
}
