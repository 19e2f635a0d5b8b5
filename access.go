// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vksync

import (
	vk "github.com/goki/vulkan"
)

// AccessType defines all potential resource usages in the
// Vulkan API.
//
// The declaration order is meaningful: every access up to
// and including AccessPresent is a read, accesses after
// it are writes, and the last two grant both read and
// write access. New access types must be added at the end
// of their class so these ranges remain contiguous.
type AccessType int32

// Access types.
const (
	// AccessNone grants no access. It is useful primarily
	// for initialization.
	AccessNone AccessType = iota

	// Read accesses.

	// AccessCommandBufferReadNV is a command buffer read
	// operation as defined by the device generated
	// commands extension, which must be enabled.
	AccessCommandBufferReadNV
	// AccessIndirectBuffer is a read as an indirect
	// buffer for drawing or dispatching.
	AccessIndirectBuffer
	// AccessIndexBuffer is a read as an index buffer for
	// drawing.
	AccessIndexBuffer
	// AccessVertexBuffer is a read as a vertex buffer for
	// drawing.
	AccessVertexBuffer
	// AccessVertexShaderReadUniformBuffer is a read as a
	// uniform buffer in a vertex shader.
	AccessVertexShaderReadUniformBuffer
	// AccessVertexShaderReadSampledImageOrUniformTexelBuffer
	// is a read as a sampled image or uniform texel
	// buffer in a vertex shader.
	AccessVertexShaderReadSampledImageOrUniformTexelBuffer
	// AccessVertexShaderReadOther is a read as any other
	// resource in a vertex shader.
	AccessVertexShaderReadOther
	// AccessTessellationControlShaderReadUniformBuffer is
	// a read as a uniform buffer in a tessellation
	// control shader.
	AccessTessellationControlShaderReadUniformBuffer
	// AccessTessellationControlShaderReadSampledImageOrUniformTexelBuffer
	// is a read as a sampled image or uniform texel
	// buffer in a tessellation control shader.
	AccessTessellationControlShaderReadSampledImageOrUniformTexelBuffer
	// AccessTessellationControlShaderReadOther is a read
	// as any other resource in a tessellation control
	// shader.
	AccessTessellationControlShaderReadOther
	// AccessTessellationEvaluationShaderReadUniformBuffer
	// is a read as a uniform buffer in a tessellation
	// evaluation shader.
	AccessTessellationEvaluationShaderReadUniformBuffer
	// AccessTessellationEvaluationShaderReadSampledImageOrUniformTexelBuffer
	// is a read as a sampled image or uniform texel
	// buffer in a tessellation evaluation shader.
	AccessTessellationEvaluationShaderReadSampledImageOrUniformTexelBuffer
	// AccessTessellationEvaluationShaderReadOther is a
	// read as any other resource in a tessellation
	// evaluation shader.
	AccessTessellationEvaluationShaderReadOther
	// AccessGeometryShaderReadUniformBuffer is a read as
	// a uniform buffer in a geometry shader.
	AccessGeometryShaderReadUniformBuffer
	// AccessGeometryShaderReadSampledImageOrUniformTexelBuffer
	// is a read as a sampled image or uniform texel
	// buffer in a geometry shader.
	AccessGeometryShaderReadSampledImageOrUniformTexelBuffer
	// AccessGeometryShaderReadOther is a read as any
	// other resource in a geometry shader.
	AccessGeometryShaderReadOther
	// AccessFragmentShaderReadUniformBuffer is a read as
	// a uniform buffer in a fragment shader.
	AccessFragmentShaderReadUniformBuffer
	// AccessFragmentShaderReadSampledImageOrUniformTexelBuffer
	// is a read as a sampled image or uniform texel
	// buffer in a fragment shader.
	AccessFragmentShaderReadSampledImageOrUniformTexelBuffer
	// AccessFragmentShaderReadColorInputAttachment is a
	// read as an input attachment with a color format in
	// a fragment shader.
	AccessFragmentShaderReadColorInputAttachment
	// AccessFragmentShaderReadDepthStencilInputAttachment
	// is a read as an input attachment with a
	// depth/stencil format in a fragment shader.
	AccessFragmentShaderReadDepthStencilInputAttachment
	// AccessFragmentShaderReadOther is a read as any
	// other resource in a fragment shader.
	AccessFragmentShaderReadOther
	// AccessColorAttachmentRead is a read by blending,
	// logic operations or subpass load operations.
	AccessColorAttachmentRead
	// AccessDepthStencilAttachmentRead is a read by
	// depth/stencil tests or subpass load operations.
	AccessDepthStencilAttachmentRead
	// AccessComputeShaderReadUniformBuffer is a read as a
	// uniform buffer in a compute shader.
	AccessComputeShaderReadUniformBuffer
	// AccessComputeShaderReadSampledImageOrUniformTexelBuffer
	// is a read as a sampled image or uniform texel
	// buffer in a compute shader.
	AccessComputeShaderReadSampledImageOrUniformTexelBuffer
	// AccessComputeShaderReadOther is a read as any other
	// resource in a compute shader.
	AccessComputeShaderReadOther
	// AccessAnyShaderReadUniformBuffer is a read as a
	// uniform buffer in any shader.
	AccessAnyShaderReadUniformBuffer
	// AccessAnyShaderReadUniformBufferOrVertexBuffer is a
	// read as a uniform buffer in any shader, or as a
	// vertex buffer.
	AccessAnyShaderReadUniformBufferOrVertexBuffer
	// AccessAnyShaderReadSampledImageOrUniformTexelBuffer
	// is a read as a sampled image or uniform texel
	// buffer in any shader.
	AccessAnyShaderReadSampledImageOrUniformTexelBuffer
	// AccessAnyShaderReadOther is a read as any other
	// resource (excluding attachments) in any shader.
	AccessAnyShaderReadOther
	// AccessTransferRead is a read as the source of a
	// transfer operation.
	AccessTransferRead
	// AccessHostRead is a read on the host.
	AccessHostRead
	// AccessPresent is a read by the presentation engine
	// (i.e., vkQueuePresentKHR).
	AccessPresent

	// Write accesses.

	// AccessCommandBufferWriteNV is a command buffer
	// write operation as defined by the device generated
	// commands extension, which must be enabled.
	AccessCommandBufferWriteNV
	// AccessVertexShaderWrite is a write as any resource
	// in a vertex shader.
	AccessVertexShaderWrite
	// AccessTessellationControlShaderWrite is a write as
	// any resource in a tessellation control shader.
	AccessTessellationControlShaderWrite
	// AccessTessellationEvaluationShaderWrite is a write
	// as any resource in a tessellation evaluation
	// shader.
	AccessTessellationEvaluationShaderWrite
	// AccessGeometryShaderWrite is a write as any
	// resource in a geometry shader.
	AccessGeometryShaderWrite
	// AccessFragmentShaderWrite is a write as any
	// resource in a fragment shader.
	AccessFragmentShaderWrite
	// AccessColorAttachmentWrite is a write as a color
	// attachment during rendering, or via a subpass store
	// operation.
	AccessColorAttachmentWrite
	// AccessDepthStencilAttachmentWrite is a write as a
	// depth/stencil attachment during rendering, or via a
	// subpass store operation.
	AccessDepthStencilAttachmentWrite
	// AccessDepthAttachmentWriteStencilReadOnly is a
	// write as the depth aspect of a depth/stencil
	// attachment during rendering, whilst the stencil
	// aspect is read-only.
	// It requires VK_KHR_maintenance2 to be enabled.
	AccessDepthAttachmentWriteStencilReadOnly
	// AccessStencilAttachmentWriteDepthReadOnly is a
	// write as the stencil aspect of a depth/stencil
	// attachment during rendering, whilst the depth
	// aspect is read-only.
	// It requires VK_KHR_maintenance2 to be enabled.
	AccessStencilAttachmentWriteDepthReadOnly
	// AccessComputeShaderWrite is a write as any resource
	// in a compute shader.
	AccessComputeShaderWrite
	// AccessAnyShaderWrite is a write as any resource in
	// any shader.
	AccessAnyShaderWrite
	// AccessTransferWrite is a write as the destination
	// of a transfer operation.
	AccessTransferWrite
	// AccessHostWrite is a write on the host.
	AccessHostWrite

	// Read-write accesses.

	// AccessColorAttachmentReadWrite is a read or write
	// as a color attachment during rendering.
	AccessColorAttachmentReadWrite
	// AccessGeneral covers any access on the device.
	// It is useful for debugging; avoid it otherwise for
	// performance reasons.
	AccessGeneral

	// NumAccessTypes is the number of access types.
	NumAccessTypes
)

// read reports whether t grants read-only access.
// It relies on the declaration order of the access types.
func (t AccessType) read() bool { return t <= AccessPresent }

// String implements fmt.Stringer.
func (t AccessType) String() string {
	switch t {
	case AccessNone:
		return "AccessNone"
	case AccessCommandBufferReadNV:
		return "AccessCommandBufferReadNV"
	case AccessIndirectBuffer:
		return "AccessIndirectBuffer"
	case AccessIndexBuffer:
		return "AccessIndexBuffer"
	case AccessVertexBuffer:
		return "AccessVertexBuffer"
	case AccessVertexShaderReadUniformBuffer:
		return "AccessVertexShaderReadUniformBuffer"
	case AccessVertexShaderReadSampledImageOrUniformTexelBuffer:
		return "AccessVertexShaderReadSampledImageOrUniformTexelBuffer"
	case AccessVertexShaderReadOther:
		return "AccessVertexShaderReadOther"
	case AccessTessellationControlShaderReadUniformBuffer:
		return "AccessTessellationControlShaderReadUniformBuffer"
	case AccessTessellationControlShaderReadSampledImageOrUniformTexelBuffer:
		return "AccessTessellationControlShaderReadSampledImageOrUniformTexelBuffer"
	case AccessTessellationControlShaderReadOther:
		return "AccessTessellationControlShaderReadOther"
	case AccessTessellationEvaluationShaderReadUniformBuffer:
		return "AccessTessellationEvaluationShaderReadUniformBuffer"
	case AccessTessellationEvaluationShaderReadSampledImageOrUniformTexelBuffer:
		return "AccessTessellationEvaluationShaderReadSampledImageOrUniformTexelBuffer"
	case AccessTessellationEvaluationShaderReadOther:
		return "AccessTessellationEvaluationShaderReadOther"
	case AccessGeometryShaderReadUniformBuffer:
		return "AccessGeometryShaderReadUniformBuffer"
	case AccessGeometryShaderReadSampledImageOrUniformTexelBuffer:
		return "AccessGeometryShaderReadSampledImageOrUniformTexelBuffer"
	case AccessGeometryShaderReadOther:
		return "AccessGeometryShaderReadOther"
	case AccessFragmentShaderReadUniformBuffer:
		return "AccessFragmentShaderReadUniformBuffer"
	case AccessFragmentShaderReadSampledImageOrUniformTexelBuffer:
		return "AccessFragmentShaderReadSampledImageOrUniformTexelBuffer"
	case AccessFragmentShaderReadColorInputAttachment:
		return "AccessFragmentShaderReadColorInputAttachment"
	case AccessFragmentShaderReadDepthStencilInputAttachment:
		return "AccessFragmentShaderReadDepthStencilInputAttachment"
	case AccessFragmentShaderReadOther:
		return "AccessFragmentShaderReadOther"
	case AccessColorAttachmentRead:
		return "AccessColorAttachmentRead"
	case AccessDepthStencilAttachmentRead:
		return "AccessDepthStencilAttachmentRead"
	case AccessComputeShaderReadUniformBuffer:
		return "AccessComputeShaderReadUniformBuffer"
	case AccessComputeShaderReadSampledImageOrUniformTexelBuffer:
		return "AccessComputeShaderReadSampledImageOrUniformTexelBuffer"
	case AccessComputeShaderReadOther:
		return "AccessComputeShaderReadOther"
	case AccessAnyShaderReadUniformBuffer:
		return "AccessAnyShaderReadUniformBuffer"
	case AccessAnyShaderReadUniformBufferOrVertexBuffer:
		return "AccessAnyShaderReadUniformBufferOrVertexBuffer"
	case AccessAnyShaderReadSampledImageOrUniformTexelBuffer:
		return "AccessAnyShaderReadSampledImageOrUniformTexelBuffer"
	case AccessAnyShaderReadOther:
		return "AccessAnyShaderReadOther"
	case AccessTransferRead:
		return "AccessTransferRead"
	case AccessHostRead:
		return "AccessHostRead"
	case AccessPresent:
		return "AccessPresent"
	case AccessCommandBufferWriteNV:
		return "AccessCommandBufferWriteNV"
	case AccessVertexShaderWrite:
		return "AccessVertexShaderWrite"
	case AccessTessellationControlShaderWrite:
		return "AccessTessellationControlShaderWrite"
	case AccessTessellationEvaluationShaderWrite:
		return "AccessTessellationEvaluationShaderWrite"
	case AccessGeometryShaderWrite:
		return "AccessGeometryShaderWrite"
	case AccessFragmentShaderWrite:
		return "AccessFragmentShaderWrite"
	case AccessColorAttachmentWrite:
		return "AccessColorAttachmentWrite"
	case AccessDepthStencilAttachmentWrite:
		return "AccessDepthStencilAttachmentWrite"
	case AccessDepthAttachmentWriteStencilReadOnly:
		return "AccessDepthAttachmentWriteStencilReadOnly"
	case AccessStencilAttachmentWriteDepthReadOnly:
		return "AccessStencilAttachmentWriteDepthReadOnly"
	case AccessComputeShaderWrite:
		return "AccessComputeShaderWrite"
	case AccessAnyShaderWrite:
		return "AccessAnyShaderWrite"
	case AccessTransferWrite:
		return "AccessTransferWrite"
	case AccessHostWrite:
		return "AccessHostWrite"
	case AccessColorAttachmentReadWrite:
		return "AccessColorAttachmentReadWrite"
	case AccessGeneral:
		return "AccessGeneral"
	default:
		return "!vksync.AccessType"
	}
}

// accessInfo describes the Vulkan parameters of a given
// AccessType: the pipeline stages it happens in, the
// memory accesses it performs and the image layout it
// requires under LayoutOptimal.
type accessInfo struct {
	stageMask   vk.PipelineStageFlagBits
	accessMask  vk.AccessFlagBits
	imageLayout vk.ImageLayout
}

// accessMap maps each AccessType to its Vulkan
// parameters.
// This is definitional data. A mask weaker than the
// correct one silently permits a data race; a mask
// stronger than the correct one silently
// over-synchronizes.
var accessMap = [NumAccessTypes]accessInfo{
	AccessNone: {},
	AccessCommandBufferReadNV: {
		stageMask:   vk.PipelineStageCommandPreprocessBitNv,
		accessMask:  vk.AccessCommandPreprocessReadBitNv,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessIndirectBuffer: {
		stageMask:   vk.PipelineStageDrawIndirectBit,
		accessMask:  vk.AccessIndirectCommandReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessIndexBuffer: {
		stageMask:   vk.PipelineStageVertexInputBit,
		accessMask:  vk.AccessIndexReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessVertexBuffer: {
		stageMask:   vk.PipelineStageVertexInputBit,
		accessMask:  vk.AccessVertexAttributeReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessVertexShaderReadUniformBuffer: {
		stageMask:   vk.PipelineStageVertexShaderBit,
		accessMask:  vk.AccessUniformReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessVertexShaderReadSampledImageOrUniformTexelBuffer: {
		stageMask:   vk.PipelineStageVertexShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
	},
	AccessVertexShaderReadOther: {
		stageMask:   vk.PipelineStageVertexShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessTessellationControlShaderReadUniformBuffer: {
		stageMask:   vk.PipelineStageTessellationControlShaderBit,
		accessMask:  vk.AccessUniformReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessTessellationControlShaderReadSampledImageOrUniformTexelBuffer: {
		stageMask:   vk.PipelineStageTessellationControlShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
	},
	AccessTessellationControlShaderReadOther: {
		stageMask:   vk.PipelineStageTessellationControlShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessTessellationEvaluationShaderReadUniformBuffer: {
		stageMask:   vk.PipelineStageTessellationEvaluationShaderBit,
		accessMask:  vk.AccessUniformReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessTessellationEvaluationShaderReadSampledImageOrUniformTexelBuffer: {
		stageMask:   vk.PipelineStageTessellationEvaluationShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
	},
	AccessTessellationEvaluationShaderReadOther: {
		stageMask:   vk.PipelineStageTessellationEvaluationShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessGeometryShaderReadUniformBuffer: {
		stageMask:   vk.PipelineStageGeometryShaderBit,
		accessMask:  vk.AccessUniformReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessGeometryShaderReadSampledImageOrUniformTexelBuffer: {
		stageMask:   vk.PipelineStageGeometryShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
	},
	AccessGeometryShaderReadOther: {
		stageMask:   vk.PipelineStageGeometryShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessFragmentShaderReadUniformBuffer: {
		stageMask:   vk.PipelineStageFragmentShaderBit,
		accessMask:  vk.AccessUniformReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessFragmentShaderReadSampledImageOrUniformTexelBuffer: {
		stageMask:   vk.PipelineStageFragmentShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
	},
	AccessFragmentShaderReadColorInputAttachment: {
		stageMask:   vk.PipelineStageFragmentShaderBit,
		accessMask:  vk.AccessInputAttachmentReadBit,
		imageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
	},
	AccessFragmentShaderReadDepthStencilInputAttachment: {
		stageMask:   vk.PipelineStageFragmentShaderBit,
		accessMask:  vk.AccessDepthStencilAttachmentReadBit,
		imageLayout: vk.ImageLayoutDepthStencilReadOnlyOptimal,
	},
	AccessFragmentShaderReadOther: {
		stageMask:   vk.PipelineStageFragmentShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessColorAttachmentRead: {
		stageMask:   vk.PipelineStageColorAttachmentOutputBit,
		accessMask:  vk.AccessColorAttachmentReadBit,
		imageLayout: vk.ImageLayoutColorAttachmentOptimal,
	},
	AccessDepthStencilAttachmentRead: {
		stageMask:   vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit,
		accessMask:  vk.AccessDepthStencilAttachmentReadBit,
		imageLayout: vk.ImageLayoutDepthStencilReadOnlyOptimal,
	},
	AccessComputeShaderReadUniformBuffer: {
		stageMask:   vk.PipelineStageComputeShaderBit,
		accessMask:  vk.AccessUniformReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessComputeShaderReadSampledImageOrUniformTexelBuffer: {
		stageMask:   vk.PipelineStageComputeShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
	},
	AccessComputeShaderReadOther: {
		stageMask:   vk.PipelineStageComputeShaderBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessAnyShaderReadUniformBuffer: {
		stageMask:   vk.PipelineStageAllCommandsBit,
		accessMask:  vk.AccessUniformReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessAnyShaderReadUniformBufferOrVertexBuffer: {
		stageMask:   vk.PipelineStageAllCommandsBit,
		accessMask:  vk.AccessUniformReadBit | vk.AccessVertexAttributeReadBit,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessAnyShaderReadSampledImageOrUniformTexelBuffer: {
		stageMask:   vk.PipelineStageAllCommandsBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
	},
	AccessAnyShaderReadOther: {
		stageMask:   vk.PipelineStageAllCommandsBit,
		accessMask:  vk.AccessShaderReadBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessTransferRead: {
		stageMask:   vk.PipelineStageTransferBit,
		accessMask:  vk.AccessTransferReadBit,
		imageLayout: vk.ImageLayoutTransferSrcOptimal,
	},
	AccessHostRead: {
		stageMask:   vk.PipelineStageHostBit,
		accessMask:  vk.AccessHostReadBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessPresent: {
		stageMask:   vk.PipelineStageTopOfPipeBit,
		accessMask:  0,
		imageLayout: vk.ImageLayoutPresentSrc,
	},
	AccessCommandBufferWriteNV: {
		stageMask:   vk.PipelineStageCommandPreprocessBitNv,
		accessMask:  vk.AccessCommandPreprocessWriteBitNv,
		imageLayout: vk.ImageLayoutUndefined,
	},
	AccessVertexShaderWrite: {
		stageMask:   vk.PipelineStageVertexShaderBit,
		accessMask:  vk.AccessShaderWriteBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessTessellationControlShaderWrite: {
		stageMask:   vk.PipelineStageTessellationControlShaderBit,
		accessMask:  vk.AccessShaderWriteBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessTessellationEvaluationShaderWrite: {
		stageMask:   vk.PipelineStageTessellationEvaluationShaderBit,
		accessMask:  vk.AccessShaderWriteBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessGeometryShaderWrite: {
		stageMask:   vk.PipelineStageGeometryShaderBit,
		accessMask:  vk.AccessShaderWriteBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessFragmentShaderWrite: {
		stageMask:   vk.PipelineStageFragmentShaderBit,
		accessMask:  vk.AccessShaderWriteBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessColorAttachmentWrite: {
		stageMask:   vk.PipelineStageColorAttachmentOutputBit,
		accessMask:  vk.AccessColorAttachmentWriteBit,
		imageLayout: vk.ImageLayoutColorAttachmentOptimal,
	},
	AccessDepthStencilAttachmentWrite: {
		stageMask:   vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit,
		accessMask:  vk.AccessDepthStencilAttachmentWriteBit,
		imageLayout: vk.ImageLayoutDepthStencilAttachmentOptimal,
	},
	AccessDepthAttachmentWriteStencilReadOnly: {
		stageMask:   vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit,
		accessMask:  vk.AccessDepthStencilAttachmentWriteBit | vk.AccessDepthStencilAttachmentReadBit,
		imageLayout: vk.ImageLayoutDepthAttachmentStencilReadOnlyOptimal,
	},
	AccessStencilAttachmentWriteDepthReadOnly: {
		stageMask:   vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit,
		accessMask:  vk.AccessDepthStencilAttachmentWriteBit | vk.AccessDepthStencilAttachmentReadBit,
		imageLayout: vk.ImageLayoutDepthReadOnlyStencilAttachmentOptimal,
	},
	AccessComputeShaderWrite: {
		stageMask:   vk.PipelineStageComputeShaderBit,
		accessMask:  vk.AccessShaderWriteBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessAnyShaderWrite: {
		stageMask:   vk.PipelineStageAllCommandsBit,
		accessMask:  vk.AccessShaderWriteBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessTransferWrite: {
		stageMask:   vk.PipelineStageTransferBit,
		accessMask:  vk.AccessTransferWriteBit,
		imageLayout: vk.ImageLayoutTransferDstOptimal,
	},
	AccessHostWrite: {
		stageMask:   vk.PipelineStageHostBit,
		accessMask:  vk.AccessHostWriteBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
	AccessColorAttachmentReadWrite: {
		stageMask:   vk.PipelineStageColorAttachmentOutputBit,
		accessMask:  vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit,
		imageLayout: vk.ImageLayoutColorAttachmentOptimal,
	},
	AccessGeneral: {
		stageMask:   vk.PipelineStageAllCommandsBit,
		accessMask:  vk.AccessMemoryReadBit | vk.AccessMemoryWriteBit,
		imageLayout: vk.ImageLayoutGeneral,
	},
}
