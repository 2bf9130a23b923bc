// Package clipboard provides driven.Clipboard implementations.
//
//   - System: the OS clipboard via github.com/atotto/clipboard
//   - Null: a disabled clipboard, used when CLEANPASTE_CLIPBOARD=false
package clipboard
