// Copyright 2026 ModelGW Authors. All rights reserved.
// Use of this source code is governed by the project license.

// Package openrouter implements the OpenRouter provider.
//
// OpenRouter is an aggregation gateway: one OpenAI-compatible API fronting
// many upstream providers. This package adds three things on top of the
// shared openaicompat base:
//
//   - fail-fast credential resolution at construction (explicit key or the
//     OPENROUTER_API_KEY environment variable)
//   - fallback model routing, injected into the request's extra_body side
//     channel under "models"
//   - provider metadata lifting: serving provider, request cost, per-choice
//     detail and upstream finish reasons, collected into
//     ChatResponse.ProviderData for responses and stream chunks alike
package openrouter
