// Package migrate converts a system definition from the legacy SLSC custom
// device plug-in layout to the native Hardware layout.
//
// The package works on an already parsed document and never reads or writes
// files. A run proceeds as follows:
//
//  1. CheckVersion stops on documents that are already current.
//  2. Every target is checked; targets without a legacy device are skipped.
//  3. Each legacy device becomes a native SLSC device under Hardware, each
//     legacy chassis a native chassis with its sensor channels, and each module
//     is moved into the chassis' Modules container in slot order.
//  4. Alias paths that addressed modules under the legacy device are rewritten.
//
// Any error leaves the document in an undefined state; callers must discard it.
package migrate
