// Copyright 2026 ModelGW Authors. All rights reserved.
// Use of this source code is governed by the project license.

// Package llm defines the normalized chat-completion surface: requests,
// responses, stream chunks, image artifacts, the provider interface and the
// unified error taxonomy shared by every adapter.
package llm
