// Package save implements thorvg's two persisted output formats: the TVG
// tagged binary (tvg.go) and animated GIF (gif.go). Both are driven
// through a shared Saver type mirroring the original's SaveModule/Task
// pairing (original_source/src/lib/tvgSaverImpl.h,
// src/savers/tvg/tvgTvgSaver.h/.cpp), but without the v-table SaveModule
// indirection - Go's two concrete savers are picked by file extension
// instead of a loader registry, since there are only ever these two.
package save
