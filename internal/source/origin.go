package source

import "sort"

// Segment maps bytes [Start, End) of a derived file back to
// [SrcStart, SrcEnd) of Src. Segments of equal length map byte for byte; a
// substituted $variable maps its whole value onto the $NAME it replaced.
type Segment struct {
	Start, End       uint32
	Src              FileID
	SrcStart, SrcEnd uint32
	Exact            bool // bytes were copied, not substituted
}

func (s Segment) linear() bool { return s.End-s.Start == s.SrcEnd-s.SrcStart }

// at maps off inside s. An end offset of a substituted run maps to the end
// of the $NAME.
func (s Segment) at(off uint32, end bool) uint32 {
	switch {
	case s.linear():
		return s.SrcStart + off - s.Start
	case end && off > s.Start:
		return s.SrcEnd
	default:
		return s.SrcStart
	}
}

// Origins lists where the bytes of one derived file came from, ordered by
// Start. Bytes the producer made up (a newline split off an #include line)
// have no segment.
type Origins []Segment

// Copy records that out[start:end] is src[srcStart:] unchanged.
func (o *Origins) Copy(start, end uint32, src FileID, srcStart uint32) {
	if end <= start {
		return
	}
	if n := len(*o); n > 0 {
		last := &(*o)[n-1]
		if last.Exact && last.Src == src && last.End == start && last.SrcEnd == srcStart {
			last.End = end
			last.SrcEnd = srcStart + (end - start)
			return
		}
	}
	*o = append(*o, Segment{Start: start, End: end, Src: src, SrcStart: srcStart, SrcEnd: srcStart + (end - start), Exact: true})
}

// Replace records that out[start:end] stands for src[srcStart:srcEnd].
func (o *Origins) Replace(start, end uint32, src FileID, srcStart, srcEnd uint32) {
	if end <= start {
		return
	}
	*o = append(*o, Segment{Start: start, End: end, Src: src, SrcStart: srcStart, SrcEnd: srcEnd})
}

// Splice appends inner, the origins of a text written at out[delta:],
// cut at limit bytes of that text.
func (o *Origins) Splice(inner Origins, delta, limit uint32) {
	for _, s := range inner {
		if s.Start >= limit {
			break
		}
		if s.End > limit {
			if s.linear() {
				s.SrcEnd -= s.End - limit
			}
			s.End = limit
		}
		if s.Exact {
			o.Copy(s.Start+delta, s.End+delta, s.Src, s.SrcStart)
			continue
		}
		o.Replace(s.Start+delta, s.End+delta, s.Src, s.SrcStart, s.SrcEnd)
	}
}

// find returns the index of the segment holding off, or -1. An end offset
// may sit on the segment's End but not on its Start.
func (o Origins) find(off uint32, end bool) int {
	i := sort.Search(len(o), func(i int) bool {
		if end {
			return o[i].End >= off
		}
		return o[i].End > off
	})
	if i == len(o) || o[i].Start > off || (end && o[i].Start == off) {
		return -1
	}
	return i
}

// Map translates sp one step back. exact is true when sp lies inside one
// copied segment, so editing the result edits the same bytes.
func (o Origins) Map(sp Span) (out Span, exact, ok bool) {
	i := o.find(sp.Start, false)
	if i < 0 {
		return sp, false, false
	}
	s := o[i]
	out = Span{File: s.Src, Start: s.at(sp.Start, false)}
	if sp.End <= sp.Start {
		out.End = out.Start
		return out, s.Exact, true
	}
	j := o.find(sp.End, true)
	if j < 0 || o[j].Src != s.Src || o[j].at(sp.End, true) < out.Start {
		// хвост спана ушёл в другой файл: обрезаем по первому сегменту
		out.End = s.SrcEnd
		return out, false, true
	}
	out.End = o[j].at(sp.End, true)
	return out, i == j && s.Exact, true
}
