/**************************************************************************************************
** Package exifmeta reads embedded capture-time metadata from image files. It is the single
** point of contact with the EXIF format: everything above it consumes the one-function
** capability "given a path, return a capture timestamp or not-found" and stays insulated from
** metadata-format details.
**************************************************************************************************/
package exifmeta

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/entolab/ami-camera-utils/pkg/utils"
)

/**************************************************************************************************
** dateTimeFields are the EXIF tags consulted for a capture time, in order of preference.
** DateTimeOriginal is when the shutter fired; the others are fallbacks some cameras populate
** instead.
**************************************************************************************************/
var dateTimeFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
}

/**************************************************************************************************
** ReadCaptureTime extracts the capture timestamp from the EXIF data of the file at path.
** Absent or unreadable metadata is a normal, expected outcome for non-image or corrupted
** files, so it is reported through the ok flag rather than an error. The source file is
** only ever read, never mutated.
**
** Timestamps are treated as naive civil time: the EXIF value carries no zone, and none is
** attached during parsing.
**
** @param path - Image file to read
** @return time.Time - Capture timestamp, second precision
** @return bool - False when no timestamp could be determined
**************************************************************************************************/
func ReadCaptureTime(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	for _, field := range dateTimeFields {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		value, err := tag.StringVal()
		if err != nil {
			continue
		}
		if t, err := ParseExifTime(value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

/**************************************************************************************************
** ParseExifTime parses the EXIF datetime representation ('YYYY:MM:DD HH:MM:SS') into a naive
** timestamp with second precision.
**
** @param value - Raw tag value
** @return time.Time - Parsed timestamp
** @return error - Parse error for malformed values
**************************************************************************************************/
func ParseExifTime(value string) (time.Time, error) {
	return time.Parse(utils.ExifTimeLayout, value)
}
