// Copyright 2026 ModelGW Authors. All rights reserved.
// Use of this source code is governed by the project license.

// Package openaicompat is the shared base for OpenAI-compatible chat
// providers: completion, SSE streaming, health check and model listing over
// a hardened HTTP client, with per-provider hooks for request bodies,
// converted responses and stream chunks.
package openaicompat
