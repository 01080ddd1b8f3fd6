package feasibility

func GetFeasibilityClient(version int, conf ClientConfig) FeasibilityClient {
	switch version {
	case 1:
		return InitV1Client(conf)
	default:
		return nil
	}
}
