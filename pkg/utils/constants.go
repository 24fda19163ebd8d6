package utils

/**************************************************************************************************
** TimestampLayout is the layout encoded into renamed files: prefix-YYYYMMDDHHmmSS.ext.
** Second precision, no separators, matching what field-camera review tooling expects.
**************************************************************************************************/
const TimestampLayout = "20060102150405"

/**************************************************************************************************
** ExifTimeLayout is the datetime layout embedded in EXIF tags (colon-separated date).
**************************************************************************************************/
const ExifTimeLayout = "2006:01:02 15:04:05"

/**************************************************************************************************
** ImageExtensions is the set of file extensions considered image candidates during a scan.
** Extensions are matched case-insensitively after lowercasing.
**************************************************************************************************/
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
	".gif":  true,
	".bmp":  true,
}

/**************************************************************************************************
** Defaults for the CLI layer. Operations always receive these as explicit values; no package
** reads them implicitly.
**************************************************************************************************/
const DefaultPrefix = "entocamtest"
const DefaultIntervalMinutes = 10
const DefaultSampleOutputDir = "snapshots"

/**************************************************************************************************
** Reason messages
**************************************************************************************************/
var REASON_NO_TIMESTAMP = "no timestamp found"
var REASON_TARGET_EXISTS = "target already exists"
var REASON_COLLISION_RESOLVED = "collision resolved with numeric suffix"
