// Package grpc maps Results to gRPC statuses and back.
//
// Each message travels as an errdetails.ErrorInfo detail, so a Result
// survives a round trip through a non-OK status with its messages in order.
// An OK status carries no details; Success results lose their messages on the wire.
package grpc

import (
	"context"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"github.com/aponysus/outcome/aggregate"
	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/observe"
	"github.com/aponysus/outcome/result"
)

// Domain is the ErrorInfo domain used for message details.
const Domain = "outcome"

const (
	metaResult      = "result"
	metaKind        = "kind"
	metaDescription = "description"
)

// Codes selects the gRPC code for each non-success kind.
type Codes struct {
	Error   codes.Code
	Partial codes.Code
}

// DefaultCodes is used by the package-level functions.
var DefaultCodes = Codes{
	Error:   codes.FailedPrecondition,
	Partial: codes.Aborted,
}

// Code returns the gRPC code for kind.
func (c Codes) Code(kind result.Kind) codes.Code {
	switch kind {
	case result.KindSuccess:
		return codes.OK
	case result.KindPartial:
		return c.Partial
	case result.KindError:
		return c.Error
	default:
		return codes.Internal
	}
}

// ToStatus converts r using DefaultCodes.
func ToStatus(r result.Result) *status.Status { return DefaultCodes.ToStatus(r) }

// ToStatus converts r to a status with one ErrorInfo per message.
func (c Codes) ToStatus(r result.Result) *status.Status {
	code := c.Code(r.Kind())
	if code == codes.OK {
		return status.New(codes.OK, "")
	}

	st := status.New(code, summary(r))
	if r.Len() == 0 {
		// Still record the kind, since Error and Partial may share a code.
		if withKind, err := st.WithDetails(&errdetails.ErrorInfo{
			Domain:   Domain,
			Metadata: map[string]string{metaResult: r.Kind().String()},
		}); err == nil {
			return withKind
		}
		return st
	}

	details := make([]protoadapt.MessageV1, 0, r.Len())
	for _, m := range r.All() {
		meta := map[string]string{
			metaResult: r.Kind().String(),
			metaKind:   m.Kind().String(),
		}
		if m.HasDescription() {
			meta[metaDescription] = m.Description()
		}
		details = append(details, &errdetails.ErrorInfo{
			Reason:   m.Code(),
			Domain:   Domain,
			Metadata: meta,
		})
	}
	withDetails, err := st.WithDetails(details...)
	if err != nil {
		return st
	}
	return withDetails
}

// ToError is ToStatus(r).Err(); it returns nil for Success.
func ToError(r result.Result) error { return ToStatus(r).Err() }

// FromStatus rebuilds a Result using DefaultCodes.
func FromStatus(st *status.Status) (result.Result, error) { return DefaultCodes.FromStatus(st) }

// FromStatus rebuilds a Result from st.
//
// The kind comes from the ErrorInfo metadata when present, otherwise from
// the code. A non-OK status without outcome details yields a single error
// message coded "grpc_<Code>".
func (c Codes) FromStatus(st *status.Status) (result.Result, error) {
	if st == nil || st.Code() == codes.OK {
		return result.Success(), nil
	}

	var (
		msgs     []message.Message
		kindText string
	)
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		meta := info.GetMetadata()
		if kindText == "" {
			kindText = meta[metaResult]
		}
		if info.GetReason() == "" {
			continue
		}
		mk, err := message.ParseKind(meta[metaKind])
		if err != nil {
			return result.Result{}, err
		}
		m, err := message.New(mk, info.GetReason(), meta[metaDescription])
		if err != nil {
			return result.Result{}, err
		}
		msgs = append(msgs, m)
	}

	kind := c.kindFor(st.Code())
	if kindText != "" {
		k, err := result.ParseKind(kindText)
		if err != nil {
			return result.Result{}, err
		}
		kind = k
	}
	if kindText == "" && len(msgs) == 0 {
		msgs = append(msgs, message.MustError("grpc_"+st.Code().String(), st.Message()))
	}
	return result.New(kind, msgs...)
}

// FromError rebuilds a Result from any error returned by a gRPC call.
// A nil error is Success. Errors that are not statuses, or whose details
// do not decode, become an Error carrying one message.
func FromError(err error) result.Result {
	return DefaultCodes.FromError(err)
}

func (c Codes) FromError(err error) result.Result {
	if err == nil {
		return result.Success()
	}
	st, ok := status.FromError(err)
	if !ok {
		return result.Error(message.MustError("grpc_"+st.Code().String(), err.Error()))
	}
	r, decodeErr := c.FromStatus(st)
	if decodeErr != nil {
		return result.Error(message.MustError("grpc_"+st.Code().String(), st.Message()))
	}
	return r
}

func (c Codes) kindFor(code codes.Code) result.Kind {
	if code == c.Partial && code != c.Error {
		return result.KindPartial
	}
	return result.KindError
}

func summary(r result.Result) string {
	var b strings.Builder
	b.WriteString(r.Kind().String())
	n := 0
	for _, m := range r.All() {
		if m.Kind() != message.KindError {
			continue
		}
		if n == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(m.Code())
		n++
	}
	return b.String()
}

// OperationName maps "/package.Service/Method" to "package.Service.Method".
func OperationName(method string) string {
	method = strings.TrimPrefix(method, "/")
	return strings.Replace(method, "/", ".", 1)
}

// UnaryClientInterceptor reports every call's outcome, as rebuilt by
// FromError, to agg as a merge of that single Result, labeled with the
// call's operation name. The call's error is returned unchanged.
func UnaryClientInterceptor(agg *aggregate.Aggregator) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		obsCtx := ctx
		if _, ok := observe.OperationFromContext(ctx); !ok {
			obsCtx = observe.WithOperation(ctx, OperationName(method))
		}
		agg.Merge(obsCtx, FromError(err))
		return err
	}
}

// UnaryServerInterceptor reports every handled call's outcome to agg the
// same way UnaryClientInterceptor does.
func UnaryServerInterceptor(agg *aggregate.Aggregator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		obsCtx := ctx
		if _, ok := observe.OperationFromContext(ctx); !ok {
			obsCtx = observe.WithOperation(ctx, OperationName(info.FullMethod))
		}
		agg.Merge(obsCtx, FromError(err))
		return resp, err
	}
}
