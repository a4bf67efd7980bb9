package compute

import (
	"context"
	"net/netip"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

type testLogger struct {
	t     *testing.T
	warns []string
}

func (l *testLogger) Debug(s string) { l.t.Log(s) }
func (l *testLogger) Info(s string)  { l.t.Log(s) }
func (l *testLogger) Warn(s string) {
	l.t.Log(s)
	l.warns = append(l.warns, s)
}

// fakeEC2 holds one instance and its elastic IP addresses.
type fakeEC2 struct {
	instances    []types.Instance
	addresses    map[string]types.Address // keyed by allocation ID
	nextIP       string
	associateErr error
	releaseErr   error
	released     []string
}

func (f *fakeEC2) DescribeInstances(_ context.Context, params *ec2.DescribeInstancesInput,
	_ ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	output := &ec2.DescribeInstancesOutput{}
	for _, instance := range f.instances {
		if len(params.InstanceIds) > 0 && params.InstanceIds[0] != aws.ToString(instance.InstanceId) {
			continue
		}
		output.Reservations = append(output.Reservations, types.Reservation{
			Instances: []types.Instance{instance},
		})
	}
	return output, nil
}

func (f *fakeEC2) DescribeAddresses(_ context.Context, params *ec2.DescribeAddressesInput,
	_ ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error) {
	instanceID := params.Filters[0].Values[0]
	output := &ec2.DescribeAddressesOutput{}
	for _, address := range f.addresses {
		if aws.ToString(address.InstanceId) == instanceID {
			output.Addresses = append(output.Addresses, address)
		}
	}
	return output, nil
}

func (f *fakeEC2) AllocateAddress(_ context.Context, params *ec2.AllocateAddressInput,
	_ ...func(*ec2.Options)) (*ec2.AllocateAddressOutput, error) {
	if params.Domain != types.DomainTypeVpc {
		return nil, &smithy.GenericAPIError{Code: "InvalidParameterValue"}
	}
	f.addresses["eipalloc-new"] = types.Address{
		AllocationId: aws.String("eipalloc-new"),
		PublicIp:     aws.String(f.nextIP),
	}
	return &ec2.AllocateAddressOutput{
		AllocationId: aws.String("eipalloc-new"),
		PublicIp:     aws.String(f.nextIP),
	}, nil
}

func (f *fakeEC2) AssociateAddress(_ context.Context, params *ec2.AssociateAddressInput,
	_ ...func(*ec2.Options)) (*ec2.AssociateAddressOutput, error) {
	if f.associateErr != nil {
		return nil, f.associateErr
	}
	address := f.addresses[aws.ToString(params.AllocationId)]
	for id, other := range f.addresses {
		if aws.ToString(other.InstanceId) == aws.ToString(params.InstanceId) {
			other.InstanceId = nil
			f.addresses[id] = other
		}
	}
	address.InstanceId = params.InstanceId
	f.addresses[aws.ToString(params.AllocationId)] = address
	f.instances[0].PublicIpAddress = address.PublicIp
	return &ec2.AssociateAddressOutput{AssociationId: aws.String("eipassoc-1")}, nil
}

func (f *fakeEC2) ReleaseAddress(_ context.Context, params *ec2.ReleaseAddressInput,
	_ ...func(*ec2.Options)) (*ec2.ReleaseAddressOutput, error) {
	if f.releaseErr != nil {
		return nil, f.releaseErr
	}
	f.released = append(f.released, aws.ToString(params.AllocationId))
	delete(f.addresses, aws.ToString(params.AllocationId))
	return &ec2.ReleaseAddressOutput{}, nil
}

func newFakeEC2() *fakeEC2 {
	return &fakeEC2{
		instances: []types.Instance{{
			InstanceId:      aws.String("i-0abc"),
			PublicIpAddress: aws.String("203.0.113.5"),
		}},
		addresses: map[string]types.Address{
			"eipalloc-old": {
				AllocationId: aws.String("eipalloc-old"),
				PublicIp:     aws.String("203.0.113.5"),
				InstanceId:   aws.String("i-0abc"),
			},
		},
		nextIP: "203.0.113.9",
	}
}

func Test_Rotator_Rotate(t *testing.T) {
	t.Parallel()

	api := newFakeEC2()
	logger := &testLogger{t: t}
	rotator := NewRotator(api, logger)

	rotation, err := rotator.Rotate(context.Background(), "4runner")

	require.NoError(t, err)
	expected := Rotation{
		InstanceID: "i-0abc",
		OldIP:      netip.MustParseAddr("203.0.113.5"),
		NewIP:      netip.MustParseAddr("203.0.113.9"),
	}
	assert.Equal(t, expected, rotation)
	assert.Equal(t, []string{"eipalloc-old"}, api.released)
	assert.Len(t, api.addresses, 1)
	assert.Empty(t, logger.warns)
}

func Test_Rotator_Rotate_associateFails(t *testing.T) {
	t.Parallel()

	api := newFakeEC2()
	api.associateErr = &smithy.GenericAPIError{
		Code:    "InvalidInstanceID",
		Message: "The instance is not in a valid state",
	}
	rotator := NewRotator(api, &testLogger{t: t})

	_, err := rotator.Rotate(context.Background(), "4runner")

	require.ErrorIs(t, err, errors.ErrProvider)
	assert.EqualError(t, err, "associating address: provider error: "+
		"InvalidInstanceID: The instance is not in a valid state")
	// the new address is released and the old one is kept
	assert.Equal(t, []string{"eipalloc-new"}, api.released)
	assert.Contains(t, api.addresses, "eipalloc-old")
}

func Test_Rotator_Rotate_releaseFails(t *testing.T) {
	t.Parallel()

	api := newFakeEC2()
	api.releaseErr = &smithy.GenericAPIError{Code: "AuthFailure"}
	logger := &testLogger{t: t}
	rotator := NewRotator(api, logger)

	rotation, err := rotator.Rotate(context.Background(), "4runner")

	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("203.0.113.9"), rotation.NewIP)
	assert.Len(t, logger.warns, 1)
}

func Test_Rotator_Rotate_instanceErrors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		instanceName string
		instances    []types.Instance
		errWrapped   error
		errMessage   string
	}{
		"name_not_set": {
			errWrapped: errors.ErrInstanceNameNotSet,
			errMessage: "validation error: instance name is not set",
		},
		"not_found": {
			instanceName: "4runner",
			errWrapped:   errors.ErrInstanceNotFound,
			errMessage:   "validation error: instance not found: 4runner",
		},
		"ambiguous": {
			instanceName: "4runner",
			instances: []types.Instance{
				{InstanceId: aws.String("i-1")},
				{InstanceId: aws.String("i-2")},
			},
			errWrapped: errors.ErrInstanceAmbiguous,
			errMessage: "validation error: several instances match: 2 instances are named 4runner",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			api := newFakeEC2()
			api.instances = testCase.instances
			rotator := NewRotator(api, &testLogger{t: t})

			_, err := rotator.Rotate(context.Background(), testCase.instanceName)

			require.ErrorIs(t, err, testCase.errWrapped)
			assert.EqualError(t, err, testCase.errMessage)
			assert.Empty(t, api.released)
		})
	}
}
