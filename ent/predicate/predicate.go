// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChunkEvaluation is the predicate function for chunkevaluation builders.
type ChunkEvaluation func(*sql.Selector)

// CrawlRequest is the predicate function for crawlrequest builders.
type CrawlRequest func(*sql.Selector)

// DTCCause is the predicate function for dtccause builders.
type DTCCause func(*sql.Selector)

// DTCDiagnosticStep is the predicate function for dtcdiagnosticstep builders.
type DTCDiagnosticStep func(*sql.Selector)

// DTCMaster is the predicate function for dtcmaster builders.
type DTCMaster func(*sql.Selector)

// DTCRelatedSensor is the predicate function for dtcrelatedsensor builders.
type DTCRelatedSensor func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentChunk is the predicate function for documentchunk builders.
type DocumentChunk func(*sql.Selector)

// EntitySource is the predicate function for entitysource builders.
type EntitySource func(*sql.Selector)

// ExtractedCategory is the predicate function for extractedcategory builders.
type ExtractedCategory func(*sql.Selector)

// ExtractedCause is the predicate function for extractedcause builders.
type ExtractedCause func(*sql.Selector)

// ExtractedDTC is the predicate function for extracteddtc builders.
type ExtractedDTC func(*sql.Selector)

// ExtractedSensor is the predicate function for extractedsensor builders.
type ExtractedSensor func(*sql.Selector)

// ExtractedStep is the predicate function for extractedstep builders.
type ExtractedStep func(*sql.Selector)

// ExtractedTSB is the predicate function for extractedtsb builders.
type ExtractedTSB func(*sql.Selector)

// ProcessingLog is the predicate function for processinglog builders.
type ProcessingLog func(*sql.Selector)

// ResolutionLog is the predicate function for resolutionlog builders.
type ResolutionLog func(*sql.Selector)

// Sensor is the predicate function for sensor builders.
type Sensor func(*sql.Selector)

// TSBBulletin is the predicate function for tsbbulletin builders.
type TSBBulletin func(*sql.Selector)

// Vehicle is the predicate function for vehicle builders.
type Vehicle func(*sql.Selector)

// VehicleDTC is the predicate function for vehicledtc builders.
type VehicleDTC func(*sql.Selector)

// VehicleMention is the predicate function for vehiclemention builders.
type VehicleMention func(*sql.Selector)
