// Package vdom implements the virtual node tree at the heart of the runtime:
// an immutable-per-revision tree of element and text nodes carrying
// attributes, scoped styles, event handlers and per-node mailboxes, together
// with the reconciler (Sync) that patches a live surface and the dispatcher
// (Tick) that converts queued platform events into application messages.
//
// A node's id is assigned at construction and never changes. It is
// simultaneously the live element's identity, the selector root for the
// node's scoped style rules, and the correlation key used to re-locate the
// live element during reconciliation.
package vdom
