// Package monitor connects a document source, a change trigger, and a
// navigation sink around the lint engine.
//
// A Monitor fetches the document text whenever its Trigger fires, skips
// re-checking when the comment-stripped text is unchanged, and hands each fresh Report to a
// callback. FileSource, FileTrigger, EditorSink, and WriterSink are the
// file-system implementations used by the watch and lint commands.
package monitor
