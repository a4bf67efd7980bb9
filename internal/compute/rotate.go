// Package compute rotates the elastic IP address of an EC2 instance.
package compute

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/ykanggit/goDaddy-API/internal/awsclient"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
}

type Rotator struct {
	api    API
	logger Logger
}

func NewRotator(api API, logger Logger) *Rotator {
	return &Rotator{
		api:    api,
		logger: logger,
	}
}

type Rotation struct {
	InstanceID string
	OldIP      netip.Addr // invalid if the instance had no elastic IP
	NewIP      netip.Addr
}

// Rotate allocates a new elastic IP address, associates it with the
// instance tagged with the given name and releases the elastic IP
// addresses previously associated with it. The new public address is
// read back from the instance.
func (r *Rotator) Rotate(ctx context.Context, instanceName string) (
	rotation Rotation, err error) {
	if instanceName == "" {
		return rotation, fmt.Errorf("%w: %w", errors.ErrValidation, errors.ErrInstanceNameNotSet)
	}

	instance, err := r.findInstance(ctx, instanceName)
	if err != nil {
		return rotation, err
	}
	rotation.InstanceID = aws.ToString(instance.InstanceId)
	rotation.OldIP, _ = netip.ParseAddr(aws.ToString(instance.PublicIpAddress))

	previous, err := r.api.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{
		Filters: []types.Filter{{
			Name:   aws.String("instance-id"),
			Values: []string{rotation.InstanceID},
		}},
	})
	if err != nil {
		return rotation, fmt.Errorf("describing addresses: %w", awsclient.WrapError(err))
	}

	allocated, err := r.api.AllocateAddress(ctx, &ec2.AllocateAddressInput{
		Domain: types.DomainTypeVpc,
	})
	if err != nil {
		return rotation, fmt.Errorf("allocating address: %w", awsclient.WrapError(err))
	}
	r.logger.Debug(fmt.Sprintf("allocated elastic IP %s (%s)",
		aws.ToString(allocated.PublicIp), aws.ToString(allocated.AllocationId)))

	_, err = r.api.AssociateAddress(ctx, &ec2.AssociateAddressInput{
		AllocationId:       allocated.AllocationId,
		InstanceId:         instance.InstanceId,
		AllowReassociation: aws.Bool(true),
	})
	if err != nil {
		r.release(ctx, aws.ToString(allocated.AllocationId))
		return rotation, fmt.Errorf("associating address: %w", awsclient.WrapError(err))
	}

	for _, address := range previous.Addresses {
		r.release(ctx, aws.ToString(address.AllocationId))
	}

	rotation.NewIP, err = r.publicIP(ctx, rotation.InstanceID)
	if err != nil {
		return rotation, err
	}
	r.logger.Info(fmt.Sprintf("instance %s public IP rotated from %s to %s",
		instanceName, ipString(rotation.OldIP), rotation.NewIP))
	return rotation, nil
}

func (r *Rotator) release(ctx context.Context, allocationID string) {
	_, err := r.api.ReleaseAddress(ctx, &ec2.ReleaseAddressInput{
		AllocationId: aws.String(allocationID),
	})
	if err != nil {
		r.logger.Warn(fmt.Sprintf("releasing elastic IP %s: %s",
			allocationID, awsclient.WrapError(err)))
		return
	}
	r.logger.Debug("released elastic IP " + allocationID)
}

func (r *Rotator) findInstance(ctx context.Context, instanceName string) (
	instance types.Instance, err error) {
	output, err := r.api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{Name: aws.String("tag:Name"), Values: []string{instanceName}},
			{Name: aws.String("instance-state-name"), Values: []string{"pending", "running", "stopping", "stopped"}},
		},
	})
	if err != nil {
		return instance, fmt.Errorf("describing instances: %w", awsclient.WrapError(err))
	}

	var instances []types.Instance
	for _, reservation := range output.Reservations {
		instances = append(instances, reservation.Instances...)
	}

	switch len(instances) {
	case 0:
		return instance, fmt.Errorf("%w: %w: %s", errors.ErrValidation,
			errors.ErrInstanceNotFound, instanceName)
	case 1:
		return instances[0], nil
	default:
		return instance, fmt.Errorf("%w: %w: %d instances are named %s", errors.ErrValidation,
			errors.ErrInstanceAmbiguous, len(instances), instanceName)
	}
}

func (r *Rotator) publicIP(ctx context.Context, instanceID string) (ip netip.Addr, err error) {
	output, err := r.api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return ip, fmt.Errorf("describing instance: %w", awsclient.WrapError(err))
	}

	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			value := aws.ToString(instance.PublicIpAddress)
			if value == "" {
				break
			}
			ip, err = netip.ParseAddr(value)
			if err != nil {
				return ip, fmt.Errorf("%w: %w: %q", errors.ErrProvider,
					errors.ErrIPReceivedMalformed, value)
			}
			return ip, nil
		}
	}
	return ip, fmt.Errorf("%w: %w: instance %s", errors.ErrProvider,
		errors.ErrNoPublicIP, instanceID)
}

func ipString(ip netip.Addr) string {
	if !ip.IsValid() {
		return "none"
	}
	return ip.String()
}
