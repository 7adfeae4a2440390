// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/hwfft/fft"
	"github.com/pkg/errors"
)

// A vector is one line of a vector file: four raw host samples.
type vector struct {
	src  string
	line int
	raw  [fft.N][2]int
}

func (v *vector) String() string {
	return v.src + ":" + strconv.Itoa(v.line)
}

// parseVectors reads vector lines from r. Each line holds four re,im pairs
// separated by blanks. Anything after a '#' is a comment.
//
//	# impulse
//	16,0  0,0  0,0  0,0
//
func parseVectors(src string, r io.Reader) ([]vector, error) {
	var vs []vector
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := s.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != fft.N {
			return nil, errors.Errorf("%s:%d: expected %d samples, got %d", src, n, fft.N, len(fields))
		}
		v := vector{src: src, line: n}
		for i, f := range fields {
			re, im, ok := strings.Cut(f, ",")
			if !ok {
				return nil, errors.Errorf("%s:%d: malformed sample %q", src, n, f)
			}
			var err error
			if v.raw[i][0], err = parseSample(re); err != nil {
				return nil, errors.Wrapf(err, "%s:%d", src, n)
			}
			if v.raw[i][1], err = parseSample(im); err != nil {
				return nil, errors.Wrapf(err, "%s:%d", src, n)
			}
		}
		vs = append(vs, v)
	}
	return vs, errors.Wrap(s.Err(), src)
}

func parseSample(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 16)
	if err != nil {
		return 0, errors.Errorf("invalid sample value %q", s)
	}
	if v < -128 || v > 127 {
		return 0, errors.Errorf("sample value %d out of range [-128, 127]", v)
	}
	return int(v), nil
}
