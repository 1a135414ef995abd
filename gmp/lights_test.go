package gmp

import (
	"errors"
	"testing"

	"github.com/gmprotate/gmprotate/geom"
)

func TestLightEncodeDecodeRoundTrip(t *testing.T) {
	l := Light{ARGB: 0xAABBCCDD, X: 100, Y: 200, Z: 50, Radius: 300, Intensity: 9, Shape: 1, OnTime: 2, OffTime: 3}
	raw := l.Encode()
	got, err := DecodeLights(raw[:])
	if err != nil {
		t.Fatalf("DecodeLights: %v", err)
	}
	if len(got) != 1 || got[0] != l {
		t.Fatalf("round trip = %+v, want [%+v]", got, l)
	}
}

func TestDecodeLightsBadLength(t *testing.T) {
	_, err := DecodeLights(make([]byte, LightSize+1))
	if err == nil {
		t.Fatal("expected an error for a misaligned LGHT payload")
	}
}

func TestTransformLightFlipX(t *testing.T) {
	l := Light{X: 100, Y: 200}
	got, err := TransformLight(l, geom.FlipX)
	if err != nil {
		t.Fatalf("TransformLight: %v", err)
	}
	if got.X != LightMax-100 || got.Y != 200 {
		t.Errorf("TransformLight(flipX) = (%d,%d), want (%d,200)", got.X, got.Y, LightMax-100)
	}
}

func TestTransformLightOverflow(t *testing.T) {
	l := Light{X: LightMax + 10, Y: 0}
	_, err := TransformLight(l, geom.FlipX)
	if !errors.Is(err, ErrCoordinateOverflow) {
		t.Errorf("TransformLight overflow: err = %v, want ErrCoordinateOverflow", err)
	}
}

func TestEncodeLightsPreservesOrder(t *testing.T) {
	lights := []Light{{X: 1, Y: 2}, {X: 3, Y: 4}}
	payload := EncodeLights(lights)
	got, err := DecodeLights(payload)
	if err != nil {
		t.Fatalf("DecodeLights: %v", err)
	}
	if len(got) != 2 || got[0].X != 1 || got[1].X != 3 {
		t.Errorf("EncodeLights/DecodeLights round trip = %+v", got)
	}
}
