// Copyright 2026 ModelGW Authors. All rights reserved.
// Use of this source code is governed by the project license.

// Package middleware provides request rewriting for LLM providers.
//
// A RewriterChain runs before a provider builds its wire request, giving
// every provider a single place for parameter cleanup that would otherwise
// be repeated per adapter (e.g. clearing tool_choice when tools is empty).
package middleware
