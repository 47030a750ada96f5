// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the boundary between the font backend and the host
// rendering backend.
//
// The font backend never draws anything itself. It only needs to hand the
// atlas pixels to a texture and to toggle texture smoothing, so the
// contract is deliberately narrow:
//
//   - [TextureFactory] creates empty textures on demand.
//   - [Texture] accepts a full RGBA upload and a smoothing flag.
//
// # Key Principle
//
// The backend RECEIVES a texture creator from the host application, it does
// NOT create a GPU device of its own. [GPUFactory] adapts any
// gpucontext.TextureCreator (for example a gogpu renderer) to
// [TextureFactory].
//
// # Implementations
//
//   - [SoftwareFactory]: keeps pixels in memory; useful for tests, image
//     export and hit testing.
//   - [GPUFactory]: uploads through gpucontext, updating in place when the
//     size is unchanged.
//
// Each texture also exposes a [Descriptor] expressed with gputypes so the
// host can configure the sampler it binds the atlas with.
package render
