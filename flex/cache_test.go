package flex

import (
	"testing"

	tu "github.com/benoitkugler/flexlayout/utils/testutils"
)

func TestRoundValueToPixelGrid(t *testing.T) {
	tu.AssertEqual(t, roundValueToPixelGrid(10.2, 1, false, false), Fl(10))
	tu.AssertEqual(t, roundValueToPixelGrid(10.6, 1, false, false), Fl(11))
	tu.AssertEqual(t, roundValueToPixelGrid(10.5, 2, false, false), Fl(10.5))
	tu.AssertEqual(t, roundValueToPixelGrid(10.3, 1, true, false), Fl(11))
	tu.AssertEqual(t, roundValueToPixelGrid(10.7, 1, false, true), Fl(10))
	tu.AssertEqual(t, roundValueToPixelGrid(10, 0, false, false), Fl(10))
}

func TestMeasureModeSizeIsExactAndMatchesOldMeasuredSize(t *testing.T) {
	tu.AssertEqual(t, measureModeSizeIsExactAndMatchesOldMeasuredSize(MeasureModeExactly, 10, 10), true)
	tu.AssertEqual(t, measureModeSizeIsExactAndMatchesOldMeasuredSize(MeasureModeExactly, 10, 11), false)
	tu.AssertEqual(t, measureModeSizeIsExactAndMatchesOldMeasuredSize(MeasureModeAtMost, 10, 10), false)
}

func TestMeasureModeOldSizeIsUnspecifiedAndStillFits(t *testing.T) {
	tu.AssertEqual(t, measureModeOldSizeIsUnspecifiedAndStillFits(MeasureModeAtMost, 20, MeasureModeUndefined, 10), true)
	tu.AssertEqual(t, measureModeOldSizeIsUnspecifiedAndStillFits(MeasureModeAtMost, 5, MeasureModeUndefined, 10), false)
}

func TestMeasureModeNewMeasureSizeIsStricterAndStillValid(t *testing.T) {
	tu.AssertEqual(t, measureModeNewMeasureSizeIsStricterAndStillValid(MeasureModeAtMost, 8, MeasureModeAtMost, 20, 8), true)
	tu.AssertEqual(t, measureModeNewMeasureSizeIsStricterAndStillValid(MeasureModeAtMost, 8, MeasureModeAtMost, 20, 9), false)
}

func TestNodeCanUseCachedMeasurement(t *testing.T) {
	ok := nodeCanUseCachedMeasurement(
		MeasureModeExactly, 100, MeasureModeAtMost, 50,
		MeasureModeExactly, 100, MeasureModeUndefined, 30,
		100, 30,
		0, 0, 1,
	)
	tu.AssertEqual(t, ok, true)

	notOK := nodeCanUseCachedMeasurement(
		MeasureModeExactly, 100, MeasureModeAtMost, 10,
		MeasureModeExactly, 100, MeasureModeUndefined, 30,
		100, 30,
		0, 0, 1,
	)
	tu.AssertEqual(t, notOK, false)
}
