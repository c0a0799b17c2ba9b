// Copyright 2026 ModelGW Authors. All rights reserved.
// Use of this source code is governed by the project license.

/*
Package providers is the shared wire layer for OpenAI-compatible chat
providers. Concrete provider packages (openrouter, and any future
compatible backend) depend on it for request/response conversion, error
mapping and response normalization.

# Core types

  - OpenAICompatRequest / OpenAICompatMessage — outbound wire shapes,
    including the ExtraBody side channel merged into the request body
  - OpenAICompatResponse / OpenAICompatChoice / OpenAICompatUsage — inbound
    wire shapes, partially typed: recognized fields are struct members, all
    residual keys land in an Extra bag at every nesting level

# Core functions

  - MapHTTPError — maps HTTP status codes to semantic llm.Error values
  - ReadErrorMessage — tolerant error-body reader
  - ChooseModel — model selection priority (request > default > fallback)
  - ToLLMChatResponse — wire response to llm.ChatResponse, including
    multi-part content and image extraction
  - ExtractContent / DecodeDataURI — multi-part content splitting and
    inline-image decoding
  - MetadataMap / MergeExtra — tolerant coercion of wire substructures into
    provider metadata maps
*/
package providers
