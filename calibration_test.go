// SPDX-License-Identifier: NONE
package linescan

import (
	"context"
	"testing"
)

func TestDigitCalibration(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantValue int
		wantOk    bool
	}{
		{name: "both ends", line: "1abc2", wantValue: 12, wantOk: true},
		{name: "inner digits", line: "pqr3stu8vwx", wantValue: 38, wantOk: true},
		{name: "many digits", line: "a1b2c3d4e5f", wantValue: 15, wantOk: true},
		{name: "single digit", line: "treb7uchet", wantValue: 77, wantOk: true},
		{name: "long run", line: "x123456789012345678901234567890y", wantValue: 10, wantOk: true},
		{name: "words ignored", line: "two1nine", wantValue: 11, wantOk: true},
		{name: "no digits", line: "abcdef", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := DigitCalibration(context.Background(), tt.line)
			if err != nil {
				t.Fatalf("DigitCalibration() error = %v", err)
			}
			if ok != tt.wantOk {
				t.Fatalf("DigitCalibration() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got.Value() != tt.wantValue {
				t.Errorf("DigitCalibration() = %d, want %d", got.Value(), tt.wantValue)
			}
		})
	}
}

func TestWordCalibration(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Calibration
		ok   bool
	}{
		{name: "words at both ends", line: "two1nine", want: Calibration{2, 9}, ok: true},
		{name: "words only", line: "eightwothree", want: Calibration{8, 3}, ok: true},
		{name: "digits at both ends", line: "1abc2", want: Calibration{1, 2}, ok: true},
		{name: "overlapping words", line: "xtwone3four", want: Calibration{2, 4}, ok: true},
		{name: "overlap at the end", line: "4nineeightseven2twone", want: Calibration{4, 1}, ok: true},
		{name: "digit before word", line: "7pqrstsixteen", want: Calibration{7, 6}, ok: true},
		{name: "zero is not a word", line: "zero", ok: false},
		{name: "nothing", line: "abcdef", ok: false},
		{name: "empty", line: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WordCalibration(tt.line)
			if ok != tt.ok {
				t.Fatalf("WordCalibration() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("WordCalibration() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
